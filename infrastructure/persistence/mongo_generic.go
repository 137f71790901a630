package persistence

import (
	"context"
	"errors"

	"finflix/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection wraps a mongo collection holding documents of type D and maps
// driver errors onto the repository sentinel errors.
type Collection[D any] struct {
	coll *mongo.Collection
}

func NewCollection[D any](db *mongo.Database, name string) *Collection[D] {
	return &Collection[D]{coll: db.Collection(name)}
}

func (c *Collection[D]) Insert(ctx context.Context, doc D) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (c *Collection[D]) FindOne(ctx context.Context, filter bson.M) (D, error) {
	var doc D
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return doc, repository.ErrNotFound
		}
		return doc, err
	}
	return doc, nil
}

func (c *Collection[D]) FindById(ctx context.Context, id string) (D, error) {
	return c.FindOne(ctx, bson.M{"_id": id})
}

// FindMany returns the matching documents in natural (insertion) order.
func (c *Collection[D]) FindMany(ctx context.Context, filter bson.M) ([]D, error) {
	cursor, err := c.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}))
	if err != nil {
		return nil, err
	}
	docs := []D{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Collection[D]) FindByIds(ctx context.Context, ids []string) ([]D, error) {
	if len(ids) == 0 {
		return []D{}, nil
	}
	return c.FindMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// Replace overwrites the document with the given id.
func (c *Collection[D]) Replace(ctx context.Context, id string, doc D) error {
	res, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ReplaceVersioned overwrites the document only if its stored version is
// still version. A miss is reported as ErrVersionConflict when the document
// exists and ErrNotFound otherwise.
func (c *Collection[D]) ReplaceVersioned(ctx context.Context, id string, version int64, doc D) error {
	res, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id, "version": version}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}
	n, err := c.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return repository.ErrVersionConflict
}

func (c *Collection[D]) Delete(ctx context.Context, id string) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
