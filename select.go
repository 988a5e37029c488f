package selenium

import (
	"fmt"
	"strconv"
	"strings"
)

// SelectElement drives a <select> dropdown. It works with any WebElement,
// including wrapped ones, so every option lookup and click goes through the
// element it was built from.
type SelectElement struct {
	element WebElement
	isMulti bool
}

// Select creates a SelectElement from el, which must be a <select> element.
func Select(el WebElement) (SelectElement, error) {
	tagName, err := el.TagName()
	if err != nil {
		return SelectElement{}, err
	}
	if strings.ToLower(tagName) != "select" {
		return SelectElement{}, fmt.Errorf(`element should have been "select" but was "%s"`, tagName)
	}

	mult, err := el.GetDOMAttribute("multiple")
	if err != nil {
		return SelectElement{}, err
	}
	return SelectElement{
		element: el,
		isMulti: mult != "" && strings.ToLower(mult) != "false",
	}, nil
}

// GetElement returns the underlying <select> element.
func (s SelectElement) GetElement() WebElement {
	return s.element
}

// IsMultiple reports whether the select element supports selecting multiple
// options at the same time. This is done by checking the value of the
// "multiple" attribute.
func (s SelectElement) IsMultiple() bool {
	return s.isMulti
}

// GetOptions returns all of the options of the select element.
func (s SelectElement) GetOptions() ([]WebElement, error) {
	return s.element.FindElements(ByTagName, "option")
}

// GetAllSelectedOptions returns all of the selected options.
func (s SelectElement) GetAllSelectedOptions() ([]WebElement, error) {
	return s.filterOptions(func(o WebElement) (bool, error) {
		return o.IsSelected()
	})
}

// GetFirstSelectedOption returns the first selected option.
func (s SelectElement) GetFirstSelectedOption() (WebElement, error) {
	opts, err := s.GetAllSelectedOptions()
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return nil, NewError(ErrCodeNoSuchElement, "no options are selected")
	}
	return opts[0], nil
}

// SelectByVisibleText selects all options whose displayed text, with
// surrounding whitespace removed, equals text. That is, when given "Bar"
// this would select an option like:
//
//	<option value="foo">Bar</option>
func (s SelectElement) SelectByVisibleText(text string) error {
	opts, err := s.optionsByText(text)
	if err != nil {
		return err
	}
	if len(opts) == 0 {
		return NewError(ErrCodeNoSuchElement, "cannot locate option with text: %s", text)
	}
	return s.setAll(opts, true)
}

// SelectByIndex selects the option at the given index. This is done by
// examining the "index" property of an element, and not merely by
// counting.
func (s SelectElement) SelectByIndex(idx int) error {
	return s.setSelectedByIndex(idx, true)
}

// SelectByValue selects all options that have a value matching the
// argument. That is, when given "foo" this would select an option like:
//
//	<option value="foo">Bar</option>
func (s SelectElement) SelectByValue(value string) error {
	opts, err := s.findOptionsByValue(value)
	if err != nil {
		return err
	}
	return s.setAll(opts, true)
}

// DeselectAll clears all selected entries. This is only valid when the
// select supports multiple selections.
func (s SelectElement) DeselectAll() error {
	if !s.isMulti {
		return fmt.Errorf("you may only deselect all options of a multi-select")
	}

	opts, err := s.GetOptions()
	if err != nil {
		return err
	}
	return s.setAll(opts, false)
}

// DeselectByValue deselects all options that have a value matching the
// argument.
func (s SelectElement) DeselectByValue(value string) error {
	if !s.isMulti {
		return fmt.Errorf("you may only deselect options of a multi-select")
	}

	opts, err := s.findOptionsByValue(value)
	if err != nil {
		return err
	}
	return s.setAll(opts, false)
}

// DeselectByIndex deselects the option at the given index.
func (s SelectElement) DeselectByIndex(index int) error {
	if !s.isMulti {
		return fmt.Errorf("you may only deselect options of a multi-select")
	}

	return s.setSelectedByIndex(index, false)
}

// DeselectByVisibleText deselects all options that display text matching
// the argument.
func (s SelectElement) DeselectByVisibleText(text string) error {
	if !s.isMulti {
		return fmt.Errorf("you may only deselect options of a multi-select")
	}

	opts, err := s.optionsByText(text)
	if err != nil {
		return err
	}
	if len(opts) == 0 {
		return NewError(ErrCodeNoSuchElement, "cannot locate option with text: %s", text)
	}
	return s.setAll(opts, false)
}

func (s SelectElement) filterOptions(keep func(WebElement) (bool, error)) ([]WebElement, error) {
	opts, err := s.GetOptions()
	if err != nil {
		return nil, err
	}
	var matched []WebElement
	for _, o := range opts {
		ok, err := keep(o)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (s SelectElement) optionsByText(text string) ([]WebElement, error) {
	want := strings.Join(strings.Fields(text), " ")
	return s.filterOptions(func(o WebElement) (bool, error) {
		got, err := o.Text()
		if err != nil {
			return false, err
		}
		return strings.Join(strings.Fields(got), " ") == want, nil
	})
}

func (s SelectElement) findOptionsByValue(value string) ([]WebElement, error) {
	opts, err := s.filterOptions(func(o WebElement) (bool, error) {
		v, err := o.GetAttribute("value")
		return v == value, err
	})
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return nil, NewError(ErrCodeNoSuchElement, "cannot locate option with value: %s", value)
	}
	return opts, nil
}

func (s SelectElement) setSelectedByIndex(index int, selected bool) error {
	idx := strconv.Itoa(index)
	opts, err := s.filterOptions(func(o WebElement) (bool, error) {
		v, err := o.GetDOMProperty("index")
		return v == idx, err
	})
	if err != nil {
		return err
	}
	if len(opts) == 0 {
		return NewError(ErrCodeNoSuchElement, "cannot locate option with index: %s", idx)
	}
	return s.setSelected(opts[0], selected)
}

// setAll applies selected to opts, stopping after the first option of a
// single-select.
func (s SelectElement) setAll(opts []WebElement, selected bool) error {
	for _, o := range opts {
		if err := s.setSelected(o, selected); err != nil {
			return err
		}
		if !s.isMulti {
			return nil
		}
	}
	return nil
}

func (s SelectElement) setSelected(option WebElement, selected bool) error {
	sel, err := option.IsSelected()
	if err != nil {
		return err
	}
	if sel != selected {
		return option.Click()
	}
	return nil
}
