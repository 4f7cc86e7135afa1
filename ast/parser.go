// Copyright (C) 2024 Simon Howard. All Rights Reserved.

package ast

import (
	"io"

	"github.com/fragglet/yocton"
)

// Parse parses a yocton document from r into a tree. In case of error,
// the properties already parsed are returned along with the error.
func Parse(r io.Reader) (*Object, error) {
	root := yocton.NewObject(r)
	obj := parseObject(root)
	return obj, root.Err()
}

func parseObject(src *yocton.Object) *Object {
	out := new(Object)
	for p := range src.Props() {
		if p.Kind() == yocton.KindObject {
			out.Props = append(out.Props, &Prop{
				Name:   p.Name(),
				Object: parseObject(p.Inner()),
			})
		} else {
			out.Props = append(out.Props, &Prop{
				Name:  p.Name(),
				Value: p.Value(),
			})
		}
	}
	return out
}
