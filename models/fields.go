package models

import (
	"database/sql/driver"
	"encoding/json"
)

// The structured sub-fields (features, achievements, social links, address,
// office hours, FAQ) live in single text columns as JSON documents. The types
// below give them typed access from Go: they marshal on write and parse on
// read, and malformed stored text degrades to an empty value instead of
// failing the page.

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FeatureList []Feature

func (l FeatureList) Value() (driver.Value, error) {
	if l == nil {
		l = FeatureList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *FeatureList) Scan(src interface{}) error {
	*l = FeatureList{}
	if b := rawBytes(src); b != nil {
		if err := json.Unmarshal(b, l); err != nil {
			*l = FeatureList{}
		}
	}
	return nil
}

type FAQList []FAQEntry

func (l FAQList) Value() (driver.Value, error) {
	if l == nil {
		l = FAQList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *FAQList) Scan(src interface{}) error {
	*l = FAQList{}
	if b := rawBytes(src); b != nil {
		if err := json.Unmarshal(b, l); err != nil {
			*l = FAQList{}
		}
	}
	return nil
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src interface{}) error {
	*l = StringList{}
	if b := rawBytes(src); b != nil {
		if err := json.Unmarshal(b, l); err != nil {
			*l = StringList{}
		}
	}
	return nil
}

type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringMap{}
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *StringMap) Scan(src interface{}) error {
	*m = StringMap{}
	if b := rawBytes(src); b != nil {
		if err := json.Unmarshal(b, m); err != nil {
			*m = StringMap{}
		}
	}
	return nil
}

func rawBytes(src interface{}) []byte {
	switch v := src.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}
