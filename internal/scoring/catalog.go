package scoring

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"faithai-profile/internal/domain"
)

// ProfileNarrative son las plantillas de texto de un perfil.
// Narrative admite los marcadores {title}, {subprofile} y {<dimension>}.
type ProfileNarrative struct {
	Headline   string   `yaml:"headline"`
	Narrative  string   `yaml:"narrative"`
	Strengths  []string `yaml:"strengths"`
	BlindSpots []string `yaml:"blind_spots"`
}

// Catalog es la tabla estatica de perfiles, sub-perfiles y plantillas.
// El orden de Profiles es el orden de declaracion usado para desempatar.
type Catalog struct {
	Profiles    []domain.ProfileDefinition            `yaml:"profiles"`
	SubProfiles []domain.SubProfileDefinition         `yaml:"sub_profiles"`
	Narratives  map[domain.ProfileID]ProfileNarrative `yaml:"narratives"`
}

// LoadCatalog lee el catalogo desde YAML. path vacio devuelve el catalogo incorporado.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Catalog{}, configErrorf("catalog file %q not found", path)
		}
		return Catalog{}, configErrorf("read catalog %q: %v", path, err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, configErrorf("parse catalog %q: %v", path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate rechaza catalogos incompletos: un catalogo parcial nunca se usa.
func (c Catalog) Validate() error {
	if len(c.Profiles) == 0 {
		return configErrorf("catalog has no profiles")
	}
	subs := make(map[domain.SubProfileID]domain.SubProfileDefinition, len(c.SubProfiles))
	for _, sp := range c.SubProfiles {
		if sp.ID == "" {
			return configErrorf("sub-profile without id")
		}
		if _, dup := subs[sp.ID]; dup {
			return configErrorf("duplicate sub-profile %q", sp.ID)
		}
		if len(sp.Prototype) == 0 {
			return configErrorf("sub-profile %q has an empty prototype", sp.ID)
		}
		if err := validatePrototype(sp.Prototype); err != nil {
			return configErrorf("sub-profile %q: %v", sp.ID, err)
		}
		subs[sp.ID] = sp
	}

	seen := make(map[domain.ProfileID]struct{}, len(c.Profiles))
	for _, p := range c.Profiles {
		if p.ID == "" {
			return configErrorf("profile without id")
		}
		if _, dup := seen[p.ID]; dup {
			return configErrorf("duplicate profile %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Title == "" {
			return configErrorf("profile %q has no title", p.ID)
		}
		for _, d := range domain.AllDimensions {
			if _, ok := p.Prototype[d]; !ok {
				return configErrorf("profile %q prototype misses dimension %s", p.ID, d)
			}
		}
		if err := validatePrototype(p.Prototype); err != nil {
			return configErrorf("profile %q: %v", p.ID, err)
		}
		if len(p.SubProfiles) == 0 {
			return configErrorf("profile %q has no sub-profiles", p.ID)
		}
		for _, sid := range p.SubProfiles {
			sp, ok := subs[sid]
			if !ok {
				return configErrorf("profile %q references unknown sub-profile %q", p.ID, sid)
			}
			if sp.Parent != p.ID {
				return configErrorf("sub-profile %q belongs to %q, not %q", sid, sp.Parent, p.ID)
			}
		}
		n, ok := c.Narratives[p.ID]
		if !ok || n.Headline == "" || n.Narrative == "" {
			return configErrorf("profile %q has no narrative template", p.ID)
		}
		if len(n.Strengths) == 0 || len(n.BlindSpots) == 0 {
			return configErrorf("profile %q narrative needs strengths and blind spots", p.ID)
		}
	}
	for _, sp := range c.SubProfiles {
		if _, ok := seen[sp.Parent]; !ok {
			return configErrorf("sub-profile %q has unknown parent %q", sp.ID, sp.Parent)
		}
	}
	return nil
}

func validatePrototype(p domain.Prototype) error {
	for d, r := range p {
		if !d.Valid() {
			return errors.New("unknown dimension " + string(d))
		}
		if r.Min > r.Max || r.Min < domain.DimensionMin || r.Max > domain.DimensionMax {
			return errors.New("invalid range for " + string(d))
		}
		if r.Weight <= 0 {
			return errors.New("non-positive weight for " + string(d))
		}
	}
	return nil
}

// Profile busca un perfil por id.
func (c Catalog) Profile(id domain.ProfileID) (domain.ProfileDefinition, bool) {
	for _, p := range c.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return domain.ProfileDefinition{}, false
}

// SubProfile busca un sub-perfil por id.
func (c Catalog) SubProfile(id domain.SubProfileID) (domain.SubProfileDefinition, bool) {
	for _, sp := range c.SubProfiles {
		if sp.ID == id {
			return sp, true
		}
	}
	return domain.SubProfileDefinition{}, false
}

func (c Catalog) clone() Catalog {
	out := Catalog{
		Profiles:    make([]domain.ProfileDefinition, len(c.Profiles)),
		SubProfiles: make([]domain.SubProfileDefinition, len(c.SubProfiles)),
		Narratives:  make(map[domain.ProfileID]ProfileNarrative, len(c.Narratives)),
	}
	for i, p := range c.Profiles {
		p.Prototype = clonePrototype(p.Prototype)
		p.SubProfiles = append([]domain.SubProfileID(nil), p.SubProfiles...)
		out.Profiles[i] = p
	}
	for i, sp := range c.SubProfiles {
		sp.Prototype = clonePrototype(sp.Prototype)
		out.SubProfiles[i] = sp
	}
	for id, n := range c.Narratives {
		n.Strengths = append([]string(nil), n.Strengths...)
		n.BlindSpots = append([]string(nil), n.BlindSpots...)
		out.Narratives[id] = n
	}
	return out
}

func clonePrototype(p domain.Prototype) domain.Prototype {
	out := make(domain.Prototype, len(p))
	for d, r := range p {
		out[d] = r
	}
	return out
}
