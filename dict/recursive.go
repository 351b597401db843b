package dict

import (
	"regexp"
	"slices"

	"github.com/lowlandresearch/larc/maybe"
)

// ValMapRec applies fn to every leaf of v, descending into map[string]any,
// map[any]any and []any containers. The containers are rebuilt, so v is left
// untouched.
func ValMapRec(fn func(any) any, v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = ValMapRec(fn, child)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, child := range t {
			out[k] = ValMapRec(fn, child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = ValMapRec(fn, child)
		}
		return out
	default:
		return fn(v)
	}
}

// Flatten returns every root-to-leaf path of nested map[string]any values.
// Each path lists the keys followed by the leaf. Keys are visited in sorted
// order.
func Flatten(v any) [][]any {
	var out [][]any
	flatten(v, nil, &out)
	return out
}

func flatten(v any, keys []any, out *[][]any) {
	m, ok := v.(map[string]any)
	if !ok {
		*out = append(*out, append(slices.Clone(keys), v))
		return
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		flatten(m[k], append(slices.Clone(keys), k), out)
	}
}

// MatchD searches each value of d named in match with the associated regex
// and merges the named groups of every match. It returns None when d lacks
// a key of match, a regex does not match, or a regex does not compile.
// Groups that did not participate in the match map to "".
func MatchD(match map[string]string, d map[string]string) maybe.Option[map[string]string] {
	keys := make([]string, 0, len(match))
	for k := range match {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make(map[string]string)
	for _, k := range keys {
		value, ok := d[k]
		if !ok {
			return maybe.None[map[string]string]()
		}
		re, err := regexp.Compile(match[k])
		if err != nil {
			return maybe.None[map[string]string]()
		}
		groups, ok := namedGroups(re, value)
		if !ok {
			return maybe.None[map[string]string]()
		}
		for name, g := range groups {
			out[name] = g
		}
	}
	return maybe.Some(out)
}

// MatchDWith is the curried form of MatchD.
func MatchDWith(match map[string]string) func(map[string]string) maybe.Option[map[string]string] {
	return func(d map[string]string) maybe.Option[map[string]string] { return MatchD(match, d) }
}

func namedGroups(re *regexp.Regexp, s string) (map[string]string, bool) {
	sub := re.FindStringSubmatch(s)
	if sub == nil {
		return nil, false
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		groups[name] = sub[i]
	}
	return groups, true
}
