package domain

import "encoding/json"

// Selection maps each category to the selected dish keyword. A missing or
// empty entry means nothing is selected for that category.
type Selection map[Category]string

func NewSelection() Selection {
	return Selection{}
}

func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for c, kw := range s {
		if kw != "" {
			out[c] = kw
		}
	}
	return out
}

// MarshalJSON always writes all five categories, null for empty ones.
func (s Selection) MarshalJSON() ([]byte, error) {
	raw := make(map[Category]*string, len(AllCategories))
	for _, c := range AllCategories {
		if kw := s[c]; kw != "" {
			kw := kw
			raw[c] = &kw
		} else {
			raw[c] = nil
		}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON ignores unknown categories and non-string values.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := Selection{}
	for key, value := range raw {
		c := Category(key)
		if !c.Valid() {
			continue
		}
		if kw, ok := value.(string); ok && kw != "" {
			out[c] = kw
		}
	}
	*s = out
	return nil
}
