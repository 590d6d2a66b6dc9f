package roster

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctorsportal/portal/internal/platform/db"
	"github.com/doctorsportal/portal/internal/platform/store"
)

type doctorDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	Specialty string             `bson:"specialty,omitempty"`
	Image     string             `bson:"image,omitempty"`
}

type doctorRepoMongo struct{ coll *mongo.Collection }

func NewDoctorRepoMongo(database *mongo.Database) DoctorRepository {
	return &doctorRepoMongo{coll: database.Collection(db.CollectionDoctors)}
}

func (r *doctorRepoMongo) Insert(ctx context.Context, d *Doctor) (*store.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, doctorDoc{Email: d.Email, Name: d.Name, Specialty: d.Specialty, Image: d.Image})
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	d.ID = oid.Hex()
	return &store.InsertResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (r *doctorRepoMongo) List(ctx context.Context) ([]*Doctor, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	var docs []doctorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	items := make([]*Doctor, 0, len(docs))
	for _, d := range docs {
		items = append(items, &Doctor{ID: d.ID.Hex(), Email: d.Email, Name: d.Name, Specialty: d.Specialty, Image: d.Image})
	}
	return items, nil
}

func (r *doctorRepoMongo) DeleteByEmail(ctx context.Context, email string) (*store.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("delete doctor: %w", err)
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
