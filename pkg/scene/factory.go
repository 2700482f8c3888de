package scene

import "fmt"

// builder constructs a Scene for one catalog entry.
type builder func() *Scene

var catalog = map[string]builder{
	"aek":     buildAek,
	"ponceto": buildPonceto,
	"smiley":  buildSmiley,
	"simple":  buildSimple,
	"spheres": buildSpheres,
}

// Create builds the named scene, or fails with an error naming the
// unknown scene and the known catalog.
func Create(name string) (*Scene, error) {
	build, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (known scenes: %s)", name, knownNames())
	}
	return build(), nil
}

// Names returns the catalog's scene names, for CLI help text.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}

func knownNames() string {
	names := Names()
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
