package database

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore keeps collections in process memory. It backs the test suite
// and local development without a MongoDB instance. The filter matcher
// covers the operators the product query builder emits: case-insensitive
// $regex, $or, and plain equality (array fields match on any element).
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]bson.M
}

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:        name,
		collections: make(map[string][]bson.M),
	}
}

func (m *MemoryStore) Available() bool { return true }

func (m *MemoryStore) Name() string { return m.name }

func (m *MemoryStore) Collection(name string) Collection {
	return &memoryCollection{store: m, name: name}
}

func (m *MemoryStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

type memoryCollection struct {
	store *MemoryStore
	name  string
}

func (c *memoryCollection) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	docs, err := c.Find(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (c *memoryCollection) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	out := make([]bson.M, 0)
	for _, doc := range c.store.collections[c.name] {
		ok, err := matchFilter(doc, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		// return copies so callers cannot mutate stored documents
		cp := make(bson.M, len(doc))
		for k, v := range doc {
			cp[k] = v
		}
		out = append(out, cp)
	}
	return out, nil
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc any) (string, error) {
	stored, err := toDocument(doc)
	if err != nil {
		return "", err
	}
	id := uuid.New().String()
	stored["_id"] = id

	c.store.mu.Lock()
	c.store.collections[c.name] = append(c.store.collections[c.name], stored)
	c.store.mu.Unlock()
	return id, nil
}

func (c *memoryCollection) InsertMany(ctx context.Context, docs []any) error {
	for _, doc := range docs {
		if _, err := c.InsertOne(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

// toDocument round-trips a value through bson so typed models and raw maps
// are stored in the same shape Mongo would store them.
func toDocument(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matchFilter(doc bson.M, filter bson.M) (bool, error) {
	for key, cond := range filter {
		if key == "$or" {
			ok, err := matchAny(doc, cond)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
			continue
		}
		ok, err := matchField(doc[key], cond)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func matchAny(doc bson.M, cond any) (bool, error) {
	clauses, err := orClauses(cond)
	if err != nil {
		return false, err
	}
	for _, clause := range clauses {
		ok, err := matchFilter(doc, clause)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func orClauses(cond any) ([]bson.M, error) {
	switch v := cond.(type) {
	case []bson.M:
		return v, nil
	case bson.A:
		clauses := make([]bson.M, 0, len(v))
		for _, elem := range v {
			clause, ok := elem.(bson.M)
			if !ok {
				return nil, fmt.Errorf("unsupported $or clause %T", elem)
			}
			clauses = append(clauses, clause)
		}
		return clauses, nil
	default:
		return nil, fmt.Errorf("unsupported $or value %T", cond)
	}
}

func matchField(value any, cond any) (bool, error) {
	if op, ok := cond.(bson.M); ok {
		pattern, hasRegex := op["$regex"]
		if !hasRegex {
			return false, fmt.Errorf("unsupported operator document %v", op)
		}
		expr := fmt.Sprint(pattern)
		if opts, hasOpts := op["$options"]; hasOpts && strings.Contains(fmt.Sprint(opts), "i") {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return false, err
		}
		s, isString := value.(string)
		if !isString {
			return false, nil
		}
		return re.MatchString(s), nil
	}

	// plain equality; array fields match when any element equals the condition
	switch v := value.(type) {
	case bson.A:
		for _, elem := range v {
			if elem == cond {
				return true, nil
			}
		}
		return false, nil
	case []string:
		for _, elem := range v {
			if elem == cond {
				return true, nil
			}
		}
		return false, nil
	default:
		return value == cond, nil
	}
}
