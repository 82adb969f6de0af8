// SPDX-License-Identifier: MPL-2.0

package capconfig

// EffectiveToolkit returns the SDK location a build should use after a
// successful Validate, reading the default toolkit variable from env.
// See Validator.EffectiveToolkit.
func EffectiveToolkit(cfg *RootConfig, env Environment) string {
	v := &Validator{Env: env}
	return v.EffectiveToolkit(cfg)
}

// EffectiveToolkit returns, in order of preference: the toolkit variable if
// set, the root toolkit path if non-blank, the last non-blank per-cap toolkit
// path, or "".
//
// Unlike checkToolkit, the environment variable wins over the root path here.
func (v *Validator) EffectiveToolkit(cfg *RootConfig) string {
	if home, ok := v.lookupToolkitEnv(); ok {
		return home
	}
	if !isBlank(cfg.ToolkitPath) {
		return cfg.ToolkitPath
	}
	var last string
	for _, spec := range cfg.Caps {
		if !isBlank(spec.ToolkitPath) {
			last = spec.ToolkitPath
		}
	}
	return last
}

// CapToolkit returns the toolkit a single cap builds with: its own path when
// validation resolved it, otherwise the effective toolkit.
func (v *Validator) CapToolkit(cfg *RootConfig, capIdx int) string {
	if capIdx < 0 || capIdx >= len(cfg.Caps) {
		return ""
	}
	if _, ok := v.lookupToolkitEnv(); !ok && isBlank(cfg.ToolkitPath) {
		if p := cfg.Caps[capIdx].ToolkitPath; !isBlank(p) {
			return p
		}
	}
	return v.EffectiveToolkit(cfg)
}
