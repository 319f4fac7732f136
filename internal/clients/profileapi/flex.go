package profileapi

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Апстрим непоследователен в типах: одно и то же поле приходит числом,
// строкой или null. Flex-типы принимают все варианты и помнят, было ли значение.

var null = []byte("null")

// FlexInt - целое из числа или строки. Set=false для null/отсутствия/мусора;
// в последнем случае исходный текст лежит в Raw.
type FlexInt struct {
	Value int64
	Set   bool
	Raw   string
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = FlexInt{}
	b = bytes.TrimSpace(b)

	if len(b) == 0 || bytes.Equal(b, null) {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		f.Raw = s
		s = strings.TrimSpace(s)
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.Value, f.Set = v, true
		}

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		// объект/bool вместо числа - считаем поле незаданным.
		f.Raw = string(b)
		return nil
	}

	f.Raw = n.String()
	if v, err := n.Int64(); err == nil {
		f.Value, f.Set = v, true
		return nil
	}

	// 3.0 - тоже целое.
	if v, err := n.Float64(); err == nil && v == math.Trunc(v) {
		f.Value, f.Set = int64(v), true
	}

	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return null, nil
	}

	return []byte(strconv.FormatInt(f.Value, 10)), nil
}

// Or возвращает значение или def, если оно не задано.
func (f FlexInt) Or(def int64) int64 {
	if f.Set {
		return f.Value
	}

	return def
}

// FlexFloat - число с плавающей точкой из числа или строки.
type FlexFloat struct {
	Value float64
	Set   bool
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	*f = FlexFloat{}
	b = bytes.TrimSpace(b)

	if len(b) == 0 || bytes.Equal(b, null) {
		return nil
	}

	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}

	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		f.Value, f.Set = v, true
	}

	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return null, nil
	}

	return []byte(strconv.FormatFloat(f.Value, 'f', -1, 64)), nil
}

func (f FlexFloat) Or(def float64) float64 {
	if f.Set {
		return f.Value
	}

	return def
}

// FlexBool - true/false, "true"/"false", 1/0.
type FlexBool struct {
	Value bool
	Set   bool
}

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	*f = FlexBool{}
	b = bytes.TrimSpace(b)

	if len(b) == 0 || bytes.Equal(b, null) {
		return nil
	}

	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}

	if v, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
		f.Value, f.Set = v, true
	}

	return nil
}

func (f FlexBool) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return null, nil
	}

	return []byte(strconv.FormatBool(f.Value)), nil
}

func (f FlexBool) Or(def bool) bool {
	if f.Set {
		return f.Value
	}

	return def
}
