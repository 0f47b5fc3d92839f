package validator

import (
	"errors"
	"fmt"
	"regexlab/internal/app/ports"
	"slices"
)

var ErrUnknownPreset = errors.New("unknown preset")

var builtinPresets = []ports.Preset{
	{Name: "Email", Pattern: `^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`},
	{Name: "Phone (US)", Pattern: `^\+?1?\d{10}$`},
	{Name: "URL", Pattern: `^https?://[\w\-\.]+(:\d+)?(/[\w/_\.\-]*)?$`},
}

// BuiltinPresets возвращает копию встроенной таблицы.
func BuiltinPresets() []ports.Preset {
	return slices.Clone(builtinPresets)
}

// MergePresets дописывает extra после встроенных; одноимённый extra заменяет встроенный на его месте.
func MergePresets(extra []ports.Preset) []ports.Preset {
	out := BuiltinPresets()
	for _, p := range extra {
		idx := slices.IndexFunc(out, func(b ports.Preset) bool { return b.Name == p.Name })
		if idx >= 0 {
			out[idx] = p
			continue
		}
		out = append(out, p)
	}
	return out
}

func findPreset(presets []ports.Preset, name string) (ports.Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return ports.Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
