package geometry

// Point3D is an integer or float coordinate in voxel space.
type Point3D[P Number] [3]P

// Point2D is the column projection of a Point3D, used by the
// dense-2D-with-height and hash-2D-with-height store variants.
type Point2D[P Number] [2]P

// X, Y, Z are named accessors kept alongside index access for readability
// at call sites that only touch one axis.
func (p Point3D[P]) X() P { return p[0] }
func (p Point3D[P]) Y() P { return p[1] }
func (p Point3D[P]) Z() P { return p[2] }

func (p Point2D[P]) X() P { return p[0] }
func (p Point2D[P]) Y() P { return p[1] }

// To2D drops the z coordinate.
func (p Point3D[P]) To2D() Point2D[P] {
	return Point2D[P]{p[0], p[1]}
}

// Left, Right, Front, Back, Top, Bottom return the neighboring point one
// unit along the named axis. Top/Bottom on a Point2D has no meaning, so
// Point2D only exposes the four planar neighbors.
func (p Point3D[P]) Left() Point3D[P]   { return Point3D[P]{p[0] - 1, p[1], p[2]} }
func (p Point3D[P]) Right() Point3D[P]  { return Point3D[P]{p[0] + 1, p[1], p[2]} }
func (p Point3D[P]) Front() Point3D[P]  { return Point3D[P]{p[0], p[1] - 1, p[2]} }
func (p Point3D[P]) Back() Point3D[P]   { return Point3D[P]{p[0], p[1] + 1, p[2]} }
func (p Point3D[P]) Top() Point3D[P]    { return Point3D[P]{p[0], p[1], p[2] + 1} }
func (p Point3D[P]) Bottom() Point3D[P] { return Point3D[P]{p[0], p[1], p[2] - 1} }

func (p Point2D[P]) Left() Point2D[P]  { return Point2D[P]{p[0] - 1, p[1]} }
func (p Point2D[P]) Right() Point2D[P] { return Point2D[P]{p[0] + 1, p[1]} }
func (p Point2D[P]) Front() Point2D[P] { return Point2D[P]{p[0], p[1] - 1} }
func (p Point2D[P]) Back() Point2D[P]  { return Point2D[P]{p[0], p[1] + 1} }
