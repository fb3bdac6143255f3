package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// FlexInt decodes ids the backend has emitted as either a JSON number or a
// numeric string, depending on the endpoint version. Null decodes to zero.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.Wrapf(err, "invalid numeric string %q", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

func (f FlexInt) Int() int {
	return int(f)
}

// Author normalizes the three author representations observed across backend
// versions: a bare id, a bare name string, or an {id, name} object.
type Author struct {
	ID   int
	Name string
}

func (a *Author) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Author{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Author{Name: s}
		return nil
	case '{':
		var obj struct {
			ID   FlexInt `json:"id"`
			Name string  `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*a = Author{ID: obj.ID.Int(), Name: obj.Name}
		return nil
	default:
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*a = Author{ID: n}
		return nil
	}
}

func (a Author) MarshalJSON() ([]byte, error) {
	if a.ID != 0 {
		return json.Marshal(a.ID)
	}
	if a.Name != "" {
		return json.Marshal(a.Name)
	}
	return []byte("null"), nil
}
