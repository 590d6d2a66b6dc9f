package identity

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

type userDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Email string             `bson:"email"`
	Name  string             `bson:"name,omitempty"`
	Phone string             `bson:"phone,omitempty"`
	Photo string             `bson:"photo,omitempty"`
	Role  string             `bson:"role,omitempty"`
}

func (d *userDoc) toModel() *User {
	return &User{
		ID:    d.ID.Hex(),
		Email: d.Email,
		Name:  d.Name,
		Phone: d.Phone,
		Photo: d.Photo,
		Role:  Role(d.Role),
	}
}

type userRepoMongo struct{ coll *mongo.Collection }

func NewUserRepoMongo(database *mongo.Database) UserRepository {
	return &userRepoMongo{coll: database.Collection(db.CollectionUsers)}
}

func toUpdateResult(res *mongo.UpdateResult) *store.UpdateResult {
	out := &store.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out
}

func (r *userRepoMongo) UpsertProfile(ctx context.Context, email string, p ProfileUpdate) (*store.UpdateResult, error) {
	set := bson.D{}
	if p.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *p.Name})
	}
	if p.Phone != nil {
		set = append(set, bson.E{Key: "phone", Value: *p.Phone})
	}
	if p.Photo != nil {
		set = append(set, bson.E{Key: "photo", Value: *p.Photo})
	}

	// An empty $set is rejected by the server.
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: "email", Value: email}}}}
	if len(set) > 0 {
		update = bson.D{{Key: "$set", Value: set}}
	}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", store.Translate(err))
	}
	return toUpdateResult(res), nil
}

func (r *userRepoMongo) SetRole(ctx context.Context, email string, role Role) (*store.UpdateResult, error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: string(role)}}}}
	if role == RoleNone {
		update = bson.D{{Key: "$unset", Value: bson.D{{Key: "role", Value: ""}}}}
	}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, update)
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	return toUpdateResult(res), nil
}

func (r *userRepoMongo) GetByEmail(ctx context.Context, email string) (*User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		return nil, store.Translate(err)
	}
	return doc.toModel(), nil
}

func (r *userRepoMongo) List(ctx context.Context) ([]*User, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	users := make([]*User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toModel())
	}
	return users, nil
}

func (r *userRepoMongo) DeleteByEmail(ctx context.Context, email string) (*store.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
