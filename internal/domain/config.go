package domain

// Config is a decoded configuration document. The lab config files are
// free-form; only the HyperV section has meaning to labctl itself.
type Config map[string]any

// PathIndexFileName is the name of the path index manifest at the repo root.
const PathIndexFileName = "path-index.yaml"

// Section returns the named top-level section as a map, or nil if the
// section is absent or not a map.
func (c Config) Section(name string) map[string]any {
	section, ok := c[name].(map[string]any)
	if !ok {
		return nil
	}
	return section
}

// HyperV returns the "HyperV" section. Never nil.
func (c Config) HyperV() map[string]any {
	if s := c.Section("HyperV"); s != nil {
		return s
	}
	return map[string]any{}
}

// HyperVHost returns the "Host" value of the HyperV section, or "".
func (c Config) HyperVHost() string {
	host, _ := c.HyperV()["Host"].(string)
	return host
}
