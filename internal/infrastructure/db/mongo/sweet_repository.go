package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

const sweetsCollection = "sweets"

type SweetRepository struct {
	coll *mongo.Collection
}

func NewSweetRepository(db *mongo.Database) *SweetRepository {
	return &SweetRepository{coll: db.Collection(sweetsCollection)}
}

type mongoSweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	Price     float64            `bson:"price"`
	Quantity  int                `bson:"quantity"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (m mongoSweet) toDomain() *domain.Sweet {
	return &domain.Sweet{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Category:  m.Category,
		Price:     m.Price,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// parseID converts the opaque id into an ObjectID. Malformed ids behave like
// ids that were never issued.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrSweetNotFound
	}
	return oid, nil
}

// Create inserts a new sweet with server-assigned id and timestamps.
func (r *SweetRepository) Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoSweet{
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *SweetRepository) FindByID(ctx context.Context, id string) (*domain.Sweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSweet
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// List returns all sweets, newest-created first.
func (r *SweetRepository) List(ctx context.Context) ([]*domain.Sweet, error) {
	return r.find(ctx, bson.M{})
}

// Search filters by case-insensitive name substring and/or exact category.
func (r *SweetRepository) Search(ctx context.Context, f ports.SearchSweetsFilter) ([]*domain.Sweet, error) {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Name), Options: "i"}
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	return r.find(ctx, filter)
}

func (r *SweetRepository) find(ctx context.Context, filter bson.M) ([]*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sweets := make([]*domain.Sweet, 0)
	for cur.Next(ctx) {
		var doc mongoSweet
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		sweets = append(sweets, doc.toDomain())
	}
	return sweets, cur.Err()
}

// Update applies an allow-listed patch. Only fields present in the patch are
// written; everything else keeps its prior value.
func (r *SweetRepository) Update(ctx context.Context, id string, patch ports.SweetPatch) (*domain.Sweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSweet
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *SweetRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

// DecrementStock performs the purchase as one conditional atomic update:
// the quantity check and the decrement happen in the same store operation,
// so concurrent purchases of the last unit cannot drive quantity negative.
func (r *SweetRepository) DecrementStock(ctx context.Context, id string) (*domain.Sweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSweet
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "quantity": bson.M{"$gt": 0}},
		bson.M{
			"$inc": bson.M{"quantity": -1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// The conditional update matched nothing: either the sweet is gone or
	// its stock is already zero.
	n, countErr := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if countErr != nil {
		return nil, countErr
	}
	if n == 0 {
		return nil, domain.ErrSweetNotFound
	}
	return nil, domain.ErrOutOfStock
}

// IncrementStock atomically adds amount to the current stock.
func (r *SweetRepository) IncrementStock(ctx context.Context, id string, amount int) (*domain.Sweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSweet
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$inc": bson.M{"quantity": amount},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}
