package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// FlexInt is an integer field that also accepts form-style JSON values such as
// "10" or 10.0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		return fmt.Errorf("cannot use boolean %v as an integer", v)
	case string:
		raw = strings.TrimSpace(v)
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		return fmt.Errorf("cannot coerce %s to an integer: %w", string(data), err)
	}
	*f = FlexInt(n)
	return nil
}
