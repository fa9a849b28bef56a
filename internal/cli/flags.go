package cli

import (
	"github.com/spf13/pflag"

	"github.com/alexanderramin/contentplan/internal/llm"
)

// providerValue is a --provider flag that rejects unknown names at parse time.
type providerValue struct {
	p *llm.Provider
}

var _ pflag.Value = providerValue{}

func newProviderValue(p *llm.Provider) providerValue {
	return providerValue{p: p}
}

func (v providerValue) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}

func (v providerValue) Set(s string) error {
	p, err := llm.ParseProvider(s)
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}

func (v providerValue) Type() string { return "provider" }

func addProviderFlag(flags *pflag.FlagSet, p *llm.Provider, usage string) {
	flags.VarP(newProviderValue(p), "provider", "p", usage)
}
