package server

import (
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the response from the inspect endpoint
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Index        int                    `json:"index"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        []float64              `json:"point,omitempty"`
	Normal       []float64              `json:"normal,omitempty"`
	Distance     float64                `json:"distance,omitempty"`
	Color        []float64              `json:"color"` // Traced pixel color
	Material     map[string]interface{} `json:"material,omitempty"`
}

// handleInspect traces the primary ray through pixel (x, y) and reports the
// surface it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sceneID := query.Get("scene")
	if sceneID == "" {
		sceneID = "cosc"
	}
	size, err := parseIntParam(query, "size", 200, 1, maxRenderSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	x, err := parseIntParam(query, "x", 0, 0, size-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, size-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sc, err := scene.LoadListed(sceneID, s.sceneOptions(NewWebLogger("inspect", s.logger, 0)))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	camera := renderer.NewCamera(size)
	i, j := camera.PixelCell(x, y)
	writeJSON(w, http.StatusOK, inspectPrimaryRay(sc, camera.Direction(i, j)))
}

// inspectPrimaryRay finds the surface seen along dir from the eye
func inspectPrimaryRay(sc *scene.Scene, dir core.Vec3) InspectResponse {
	tracer := integrator.NewTracer(sc)
	color := tracer.TraceColor(core.Vec3{}, dir)

	ray := geometry.NewRay(core.Vec3{}, dir)
	ray.ClosestPt(sc.Surfaces)

	response := InspectResponse{
		Hit:   ray.HasHit(),
		Index: ray.Index,
		Color: vecToSlice(color),
	}
	if !ray.HasHit() {
		return response
	}

	surface := sc.Surfaces[ray.Index]
	mat := surface.Material()
	_, patterned := sc.Pattern(ray.Index)

	response.GeometryType = geometryType(surface)
	response.Point = vecToSlice(ray.Hit)
	response.Normal = vecToSlice(surface.Normal(ray.Hit))
	response.Distance = ray.Dist
	response.Material = map[string]interface{}{
		"color":         vecToSlice(mat.Color),
		"specular":      mat.Specular,
		"shininess":     mat.Shininess,
		"reflective":    mat.Reflective,
		"refractive":    mat.Refractive,
		"transparent":   mat.Transparent,
		"sphereTexture": mat.SphereTexture,
		"pattern":       patterned,
	}
	return response
}

func geometryType(surface geometry.Surface) string {
	switch surface.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Plane:
		return "plane"
	case *geometry.Cone:
		return "cone"
	case *geometry.Cylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

func vecToSlice(v core.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
