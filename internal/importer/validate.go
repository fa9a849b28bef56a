package importer

import (
	"fmt"
	"time"
)

// ValidateContentSchema lists the problems Convert will paper over: missing
// or malformed posts, posts that are not objects, posts without a title and
// unparseable dates. None of them stop conversion.
func ValidateContentSchema(schema ContentSchema) []error {
	var errs []error

	raw, ok := schema["posts"]
	if !ok {
		errs = append(errs, ErrMissingPosts)
	} else if list, isList := elementsOf(raw); !isList {
		if !isNull(raw) {
			errs = append(errs, fmt.Errorf("posts: expected a list"))
		}
	} else {
		for i, item := range list {
			obj := objectOf(item)
			if obj == nil {
				errs = append(errs, fmt.Errorf("posts[%d]: expected an object, using an empty post", i))
				continue
			}
			if textOf(obj["titulo"]) == "" {
				errs = append(errs, fmt.Errorf("posts[%d].titulo is empty", i))
			}
		}
	}

	for _, key := range []string{"start_date", "end_date"} {
		if v := textOf(schema[key]); v != "" {
			if _, err := time.Parse("2006-01-02", v); err != nil {
				errs = append(errs, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", key, v))
			}
		}
	}

	return errs
}
