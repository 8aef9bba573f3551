package drawer

import (
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Measure is an offset that is either a plain pixel count (Unitless) or a
// number carrying an explicit unit such as "%" or "px".
type Measure struct {
	Value    float64
	Unit     string
	Unitless bool
}

// Px returns a unitless pixel measure.
func Px(v float64) Measure {
	return Measure{Value: v, Unit: "px", Unitless: true}
}

// Percent returns a percentage measure.
func Percent(v float64) Measure {
	return Measure{Value: v, Unit: "%"}
}

// With returns a copy of m carrying value v and the same unit.
func (m Measure) With(v float64) Measure {
	m.Value = v
	return m
}

// IsZero reports whether the measure has zero magnitude, whatever the unit.
func (m Measure) IsZero() bool {
	return m.Value == 0
}

// String formats the measure the way it was written: "42" for unitless
// values, "42%" or "42px" otherwise.
func (m Measure) String() string {
	v := strconv.FormatFloat(m.Value, 'f', -1, 64)
	if m.Unitless {
		return v
	}
	return v + m.Unit
}

// CSS formats the measure for a style property. Unitless values get "px".
func (m Measure) CSS() string {
	v := strconv.FormatFloat(m.Value, 'f', -1, 64)
	if m.Unitless {
		return v + "px"
	}
	return v + m.Unit
}

// Pixels resolves the measure to pixels against a reference width.
// Percentages need width > 0; other units are taken as pixels.
func (m Measure) Pixels(width float64) float64 {
	if m.Unit == "%" {
		return m.Value / 100 * width
	}
	return m.Value
}

// In converts m to the given unit against a reference width. Only px and %
// are convertible. When the conversion is impossible m is returned unchanged
// and ok is false.
func (m Measure) In(target Measure, width float64) (out Measure, ok bool) {
	if m.Unit == target.Unit {
		return m, true
	}
	if width <= 0 {
		return m, false
	}
	switch {
	case target.Unit == "%" && m.Unit == "px":
		return Percent(m.Value / width * 100), true
	case target.Unit == "px" && m.Unit == "%":
		px := m.Value / 100 * width
		if target.Unitless {
			return Px(px), true
		}
		return Measure{Value: px, Unit: "px"}, true
	}
	return m, false
}

var measurePattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)([^0-9.\n]+)$`)

// ParseMeasure splits a number or string into value and unit. Numbers parse
// as unitless pixels. Strings must be a number followed by a unit ("42%",
// "-100%", "12px"); anything else, a bare "42" included, reports
// ok == false.
func ParseMeasure(v any) (Measure, bool) {
	switch x := v.(type) {
	case Measure:
		return x, true
	case float64:
		return Px(x), true
	case float32:
		return Px(float64(x)), true
	case int:
		return Px(float64(x)), true
	case int64:
		return Px(float64(x)), true
	case string:
		return parseMeasureString(x)
	}
	return Measure{}, false
}

func parseMeasureString(s string) (Measure, bool) {
	m := measurePattern.FindStringSubmatch(s)
	if m == nil {
		return Measure{}, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Measure{}, false
	}
	return Measure{Value: n, Unit: m[2]}, true
}

// UnmarshalYAML accepts either a YAML number or a measure string.
func (m *Measure) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return m.set(raw)
}

// UnmarshalTOML accepts either a TOML number or a measure string.
func (m *Measure) UnmarshalTOML(raw any) error {
	return m.set(raw)
}

func (m *Measure) set(raw any) error {
	parsed, ok := ParseMeasure(raw)
	if !ok {
		return fmt.Errorf("drawer: invalid measure %v", raw)
	}
	*m = parsed
	return nil
}
