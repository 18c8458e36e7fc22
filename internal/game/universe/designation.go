package universe

import (
	"github.com/JoshuaAFerguson/pgnames/internal/models"
	"github.com/JoshuaAFerguson/pgnames/internal/pgnames"
)

// lyPerGridUnit scales the 2D integer galaxy-map grid Generator lays
// systems out on into the Ly space pgnames.Codec resolves sectors in.
const lyPerGridUnit = 1.0

// GenerateFrontierDesignation derives the procedural sector name covering
// pos and renders a full system designation inside it, seeded off the
// system's own position so repeated calls for the same position are
// stable. Frontier/edge systems (far from Sol) get one of these instead
// of, or alongside, a NameGenerator flavor name.
func GenerateFrontierDesignation(codec *pgnames.Codec, pos models.Position) (models.Designation, models.Vec3, error) {
	v := pgnames.Vec3{X: float64(pos.X) * lyPerGridUnit, Y: float64(pos.Y) * lyPerGridUnit, Z: 0}
	sector := codec.SectorOfPos(v)
	sectorName, err := codec.NameOfSector(sector)
	if err != nil {
		return "", models.Vec3{}, err
	}

	// The two-letter-hyphen-letter/mass-code/number group is a position
	// within the sector, not something derived from pos; a position that
	// merely identifies "somewhere in this sector" is rendered at the
	// sector's own full-width boxel (mass code 'h', AA-A 0), which is a
	// valid system name and keeps this deterministic.
	fullName := sectorName + " " + pgnames.FormatBodyDesignation('A', 'A', 'A', 'h', 0, 0)
	point, _, err := codec.CoordsOf(fullName)
	if err != nil {
		return "", models.Vec3{}, err
	}
	return models.Designation(fullName), models.Vec3{X: point.X, Y: point.Y, Z: point.Z}, nil
}
