package director

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// catalogFile is the on-disk YAML shape of a catalog:
//
//	directors:
//	  - id: kurosawa-a
//	    name: Akira Kurosawa
//	    cluster: classicist
//	    known_for: [Drama, Action]
//	    visual_mandate: "..."
//	    vector:
//	      scale: 8
//	      spectacle: 7
//	      structure: 3
//	      genreFluidity: 4
//	      emotion: 7
type catalogFile struct {
	Directors []profileSpec `mapstructure:"directors"`
}

type profileSpec struct {
	ID            string             `mapstructure:"id"`
	Name          string             `mapstructure:"name"`
	Cluster       string             `mapstructure:"cluster"`
	KnownFor      []string           `mapstructure:"known_for"`
	VisualMandate string             `mapstructure:"visual_mandate"`
	Vector        map[string]float64 `mapstructure:"vector"`
}

// LoadCatalogFile reads a YAML catalog file and returns a validated Catalog.
// File order becomes catalog declaration order, which ranking uses as its
// tie-break, so reordering the file changes tie resolution deliberately.
func LoadCatalogFile(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCatalogInvalid,
			fmt.Sprintf("failed to read catalog file %q", path))
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCatalogInvalid,
			"failed to unmarshal catalog file")
	}

	profiles := make([]Profile, 0, len(file.Directors))
	for _, spec := range file.Directors {
		p, err := spec.toProfile()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return NewCatalog(profiles)
}

// canonicalAxis maps a file key onto the matching axis constant.  Viper
// lowercases all keys, so "genreFluidity" arrives as "genrefluidity" and
// needs a case-insensitive match.  Unrecognized keys pass through unchanged
// and fail vector validation with a proper error.
func canonicalAxis(name string) style.Axis {
	for _, axis := range style.AllAxes {
		if strings.EqualFold(name, string(axis)) {
			return axis
		}
	}
	return style.Axis(name)
}

func (s profileSpec) toProfile() (Profile, error) {
	cluster, err := ParseCluster(s.Cluster)
	if err != nil {
		return Profile{}, errors.Wrap(err, errors.ErrCodeCatalogInvalid,
			"invalid cluster in catalog file").WithDetail("id=" + s.ID)
	}
	values := make(map[style.Axis]float64, len(s.Vector))
	for axis, val := range s.Vector {
		values[canonicalAxis(axis)] = val
	}
	vec, err := style.NewVector(values)
	if err != nil {
		return Profile{}, errors.Wrap(err, errors.ErrCodeCatalogInvalid,
			"invalid vector in catalog file").WithDetail("id=" + s.ID)
	}
	return Profile{
		ID:            s.ID,
		Name:          s.Name,
		Cluster:       cluster,
		KnownFor:      s.KnownFor,
		Vector:        vec,
		VisualMandate: s.VisualMandate,
	}, nil
}
