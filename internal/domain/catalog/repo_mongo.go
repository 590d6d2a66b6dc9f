package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctorsportal/portal/internal/platform/db"
	"github.com/doctorsportal/portal/internal/platform/store"
)

type appointmentTypeDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Slots []string           `bson:"slots"`
	Price float64            `bson:"price,omitempty"`
}

type appointmentTypeRepoMongo struct{ coll *mongo.Collection }

func NewAppointmentTypeRepoMongo(database *mongo.Database) AppointmentTypeRepository {
	return &appointmentTypeRepoMongo{coll: database.Collection(db.CollectionAppointments)}
}

// List returns documents in natural order, which is the catalog order the
// collection was seeded in.
func (r *appointmentTypeRepoMongo) List(ctx context.Context) ([]*AppointmentType, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find appointment types: %w", err)
	}
	var docs []appointmentTypeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode appointment types: %w", err)
	}
	items := make([]*AppointmentType, 0, len(docs))
	for _, d := range docs {
		items = append(items, &AppointmentType{ID: d.ID.Hex(), Name: d.Name, Slots: d.Slots, Price: d.Price})
	}
	return items, nil
}

func (r *appointmentTypeRepoMongo) ListNames(ctx context.Context) ([]Summary, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "name", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find appointment names: %w", err)
	}
	var docs []appointmentTypeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode appointment names: %w", err)
	}
	items := make([]Summary, 0, len(docs))
	for _, d := range docs {
		items = append(items, Summary{ID: d.ID.Hex(), Name: d.Name})
	}
	return items, nil
}

func (r *appointmentTypeRepoMongo) Create(ctx context.Context, t *AppointmentType) error {
	res, err := r.coll.InsertOne(ctx, appointmentTypeDoc{Name: t.Name, Slots: t.Slots, Price: t.Price})
	if err != nil {
		return fmt.Errorf("insert appointment type: %w", store.Translate(err))
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	t.ID = oid.Hex()
	return nil
}
