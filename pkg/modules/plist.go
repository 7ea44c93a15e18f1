package modules

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/beevik/etree"
)

const plistDoctype = `DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`

// Plist renders the table at prefix (the whole tree when empty) as an XML
// property list, suitable for `defaults import <domain> -`.
func (t *Tree) Plist(prefix string) ([]byte, error) {
	root := t.k.Raw()
	if prefix != "" {
		sub, err := t.Cut(prefix)
		if err != nil {
			return nil, err
		}
		root = sub.k.Raw()
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(plistDoctype)
	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")

	if err := plistValue(plist, root); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRender, "failed to render plist for %q", prefix)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to write plist")
	}
	return out, nil
}

func plistValue(parent *etree.Element, v interface{}) error {
	switch val := v.(type) {
	case map[string]interface{}:
		dict := parent.CreateElement("dict")
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dict.CreateElement("key").SetText(k)
			if err := plistValue(dict, val[k]); err != nil {
				return err
			}
		}
	case []interface{}:
		array := parent.CreateElement("array")
		for _, item := range val {
			if err := plistValue(array, item); err != nil {
				return err
			}
		}
	case []string:
		array := parent.CreateElement("array")
		for _, item := range val {
			array.CreateElement("string").SetText(item)
		}
	case string:
		parent.CreateElement("string").SetText(val)
	case bool:
		if val {
			parent.CreateElement("true")
		} else {
			parent.CreateElement("false")
		}
	case int:
		parent.CreateElement("integer").SetText(strconv.Itoa(val))
	case int64:
		parent.CreateElement("integer").SetText(strconv.FormatInt(val, 10))
	case uint64:
		parent.CreateElement("integer").SetText(strconv.FormatUint(val, 10))
	case float64:
		// parsers return integer literals as ints, so a float is always a real
		parent.CreateElement("real").SetText(strconv.FormatFloat(val, 'f', -1, 64))
	case time.Time:
		parent.CreateElement("date").SetText(val.UTC().Format(time.RFC3339))
	case nil:
		return fmt.Errorf("null values have no plist representation")
	default:
		parent.CreateElement("string").SetText(fmt.Sprint(val))
	}
	return nil
}
