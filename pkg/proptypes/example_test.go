package proptypes_test

import (
	"fmt"

	"github.com/dmitrymomot/immutableprops/pkg/immutable"
	"github.com/dmitrymomot/immutableprops/pkg/proptypes"
)

func ExampleListOf() {
	props := proptypes.Values{"items": immutable.NewList(1, 2, "b")}
	err := proptypes.ListOf(proptypes.Number).Validate(props, "items", "TodoList", "prop")
	fmt.Println(err)
	// Output: Invalid prop `2` of type `string` supplied to `TodoList`, expected `number`.
}

func ExampleCheckPropTypes() {
	todo, err := immutable.FromYAML([]byte(`
title: Groceries
tags: [home, weekly]
owner:
  id: 7
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	specs := proptypes.Fields{
		proptypes.F("todo", proptypes.Shape(proptypes.Fields{
			proptypes.F("title", proptypes.String.IsRequired()),
			proptypes.F("tags", proptypes.ListOf(proptypes.String)),
			proptypes.F("owner", proptypes.MapContains(proptypes.Fields{
				proptypes.F("name", proptypes.String.IsRequired()),
			})),
		})),
	}

	err = proptypes.CheckPropTypes(specs, proptypes.Values{"todo": todo}, "prop", "TodoCard")
	for _, ve := range proptypes.ExtractValidationErrors(err) {
		fmt.Println(ve.Prop+":", ve.Message)
	}
	// Output: todo: Required prop `name` was not specified in `TodoCard`.
}
