package store

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store guarded by a RWMutex. It backs the test
// suite and serves as a fallback when no DATABASE_URL is configured.
// Documents round-trip through bson so tagged structs behave the same
// as against the real database.
type Memory struct {
	name string
	mu   sync.RWMutex
	data map[string][]bson.M
}

// NewMemory returns an empty in-memory store.
func NewMemory(name string) *Memory {
	return &Memory{
		name: name,
		data: make(map[string][]bson.M),
	}
}

func (s *Memory) Insert(ctx context.Context, collection string, doc any) (string, error) {
	m, err := toDocument(doc)
	if err != nil {
		return "", err
	}
	id, ok := m["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		m["_id"] = id
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[collection] = append(s.data[collection], m)
	return id.Hex(), nil
}

func (s *Memory) Find(ctx context.Context, collection string, filter any, limit int64, out any) error {
	f, err := toDocument(filter)
	if err != nil {
		return err
	}

	s.mu.RLock()
	var matches []bson.M
	for _, doc := range s.data[collection] {
		if matchesFilter(doc, f) {
			matches = append(matches, doc)
			if limit > 0 && int64(len(matches)) == limit {
				break
			}
		}
	}
	s.mu.RUnlock()

	return decodeAll(matches, out)
}

func (s *Memory) FindOne(ctx context.Context, collection string, filter any, out any) error {
	f, err := toDocument(filter)
	if err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.data[collection] {
		if matchesFilter(doc, f) {
			raw, err := bson.Marshal(doc)
			if err != nil {
				return err
			}
			return bson.Unmarshal(raw, out)
		}
	}
	return ErrNotFound
}

func (s *Memory) UpdateOne(ctx context.Context, collection string, filter any, update any) error {
	f, err := toDocument(filter)
	if err != nil {
		return err
	}
	u, err := toDocument(update)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.data[collection] {
		if !matchesFilter(doc, f) {
			continue
		}
		// Embedded documents may decode as bson.M or bson.D depending
		// on the registry's interface{} type map.
		switch set := u["$set"].(type) {
		case bson.M:
			for k, v := range set {
				doc[k] = v
			}
		case bson.D:
			for _, e := range set {
				doc[e.Key] = e.Value
			}
		}
		return nil
	}
	return nil
}

func (s *Memory) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}

func (s *Memory) Name() string {
	return s.name
}

// toDocument normalizes any bson-taggable value into a bson.M so
// filters and stored documents compare on the same representation.
func toDocument(v any) (bson.M, error) {
	if m, ok := v.(bson.M); ok && m == nil {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// matchesFilter implements equality matching on top-level fields, which
// is the only filter shape the services use.
func matchesFilter(doc, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

// decodeAll unmarshals matched documents into out, a pointer to a
// slice of bson-taggable elements.
func decodeAll(docs []bson.M, out any) error {
	target := reflect.ValueOf(out).Elem()
	result := reflect.MakeSlice(target.Type(), 0, len(docs))
	elemType := target.Type().Elem()
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	target.Set(result)
	return nil
}
