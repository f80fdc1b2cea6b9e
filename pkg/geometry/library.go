package geometry

import (
	"fmt"
	"sort"
)

// Provider returns triangulated geometry for a named model.
type Provider interface {
	Mesh(name string) (Mesh, error)
}

// Library is an in-memory Provider holding prebuilt meshes.
type Library struct {
	meshes map[string]Mesh
}

// NewLibrary builds a mesh for every named spec.
func NewLibrary(specs map[string]Spec) (*Library, error) {
	lib := &Library{meshes: make(map[string]Mesh, len(specs))}
	for name, spec := range specs {
		m, err := Build(name, spec)
		if err != nil {
			return nil, err
		}
		lib.meshes[name] = m
	}
	return lib, nil
}

// Mesh returns the mesh registered under name.
func (l *Library) Mesh(name string) (Mesh, error) {
	m, ok := l.meshes[name]
	if !ok {
		return Mesh{}, fmt.Errorf("mesh %q not found", name)
	}
	return m, nil
}

// Names returns the registered mesh names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.meshes))
	for name := range l.meshes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
