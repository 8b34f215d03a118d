package lakenames

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature is one GeoJSON feature of the polygon source.
//
// Properties is mutated in place by the merger. The geometry and every
// other member are written back exactly as they were read.
type Feature struct {
	Properties map[string]any

	geometry orb.Geometry
	geomErr  error
	members  map[string]jsoniter.RawMessage
}

// NewFeature creates a feature from an orb geometry. A nil geometry is
// written as null.
func NewFeature(geom orb.Geometry, props map[string]any) (*Feature, error) {
	f := &Feature{
		Properties: props,
		geometry:   geom,
		members: map[string]jsoniter.RawMessage{
			"type":     jsoniter.RawMessage(`"Feature"`),
			"geometry": jsoniter.RawMessage(`null`),
		},
	}

	if geom != nil {
		raw, err := geojson.NewGeometry(geom).MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("encode geometry: %w", err)
		}
		f.members["geometry"] = raw
		f.geomErr = indexable(geom)
	} else {
		f.geomErr = &ErrInvalidGeometry{Reason: "geometry is null"}
	}
	return f, nil
}

// Geometry returns the decoded geometry, or nil when it is absent
// or could not be decoded.
func (f *Feature) Geometry() orb.Geometry {
	return f.geometry
}

// HasGeometry reports whether the feature has a non-null geometry member.
func (f *Feature) HasGeometry() bool {
	return !isNull(f.members["geometry"])
}

// GeometryErr returns why the geometry cannot be indexed, or nil.
func (f *Feature) GeometryErr() error {
	return f.geomErr
}

// Property returns a property value.
func (f *Feature) Property(key string) (any, bool) {
	v, ok := f.Properties[key]
	return v, ok
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var members map[string]jsoniter.RawMessage
	if err := jsonAPI.Unmarshal(data, &members); err != nil {
		return fmt.Errorf("decode feature: %w", err)
	}
	if members == nil {
		return fmt.Errorf("decode feature: not an object")
	}

	*f = Feature{members: members}

	if raw, ok := members["properties"]; ok && !isNull(raw) {
		if err := jsonAPI.Unmarshal(raw, &f.Properties); err != nil {
			return fmt.Errorf("decode properties: %w", err)
		}
		delete(f.members, "properties")
	}

	raw := members["geometry"]
	if isNull(raw) {
		f.geomErr = &ErrInvalidGeometry{Reason: "geometry is null"}
		return nil
	}

	// A malformed geometry drops the feature from the index but is not an error.
	g, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		f.geomErr = &ErrInvalidGeometry{Reason: err.Error()}
		return nil
	}
	f.geometry = g.Geometry()
	f.geomErr = indexable(f.geometry)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f *Feature) MarshalJSON() ([]byte, error) {
	out := make(map[string]jsoniter.RawMessage, len(f.members)+1)
	for k, v := range f.members {
		out[k] = v
	}

	// Properties that were null or absent stay that way until written to.
	if f.Properties != nil {
		raw, err := jsonAPI.Marshal(f.Properties)
		if err != nil {
			return nil, fmt.Errorf("encode properties: %w", err)
		}
		out["properties"] = raw
	}

	return jsonAPI.Marshal(out)
}

// FeatureCollection is a GeoJSON FeatureCollection.
//
// Members other than features (type, name, crs, bbox and so on) are
// preserved and written back unchanged.
type FeatureCollection struct {
	Features []*Feature

	members map[string]jsoniter.RawMessage
}

// NewFeatureCollection creates a collection holding features.
func NewFeatureCollection(features []*Feature) *FeatureCollection {
	return &FeatureCollection{
		Features: features,
		members: map[string]jsoniter.RawMessage{
			"type": jsoniter.RawMessage(`"FeatureCollection"`),
		},
	}
}

// ReadFeatureCollection decodes a GeoJSON FeatureCollection. The features
// member must be present and be an array, otherwise ErrMissingFeatures is
// returned.
func ReadFeatureCollection(data []byte) (*FeatureCollection, error) {
	fc := &FeatureCollection{}
	if err := fc.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return fc, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (fc *FeatureCollection) UnmarshalJSON(data []byte) error {
	var members map[string]jsoniter.RawMessage
	if err := jsonAPI.Unmarshal(data, &members); err != nil {
		return fmt.Errorf("decode feature collection: %w", err)
	}

	raw, ok := members["features"]
	if !ok || isNull(raw) {
		return ErrMissingFeatures
	}

	var items []jsoniter.RawMessage
	if err := jsonAPI.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFeatures, err)
	}

	features := make([]*Feature, len(items))
	for i, item := range items {
		f := &Feature{}
		if err := f.UnmarshalJSON(item); err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
		features[i] = f
	}

	delete(members, "features")
	*fc = FeatureCollection{Features: features, members: members}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (fc *FeatureCollection) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(fc.members)+1)
	for k, v := range fc.members {
		out[k] = v
	}

	features := fc.Features
	if features == nil {
		features = []*Feature{}
	}
	out["features"] = features

	return jsonAPI.Marshal(out)
}

// MarshalIndent renders the collection with two-space indentation and
// a trailing newline.
func (fc *FeatureCollection) MarshalIndent() ([]byte, error) {
	return marshalIndent(fc)
}
