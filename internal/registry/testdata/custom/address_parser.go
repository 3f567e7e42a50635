package custom

import (
	"strings"

	"treeparse/jsontree"
	"treeparse/warehouse"
)

// ParseAddressInto accepts the structured form and a "street, city" shorthand.
func ParseAddressInto(node any, out *warehouse.Address) error {
	if s, ok := node.(string); ok {
		street, city, _ := strings.Cut(s, ",")
		out.Street = strings.TrimSpace(street)
		out.City = strings.TrimSpace(city)
		return nil
	}

	obj, err := jsontree.Object(node)
	if err != nil {
		return err
	}

	if raw, ok := obj["street"]; ok {
		if out.Street, err = jsontree.String[string](raw); err != nil {
			return jsontree.Wrap(err, "street")
		}
	}
	if raw, ok := obj["city"]; ok {
		if out.City, err = jsontree.String[string](raw); err != nil {
			return jsontree.Wrap(err, "city")
		}
	}

	return nil
}
