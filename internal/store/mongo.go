package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jayadedental/clinic-api/internal/models"
)

// MongoStore bundles the three collection-backed stores over one database.
type MongoStore struct {
	Users        *MongoUserStore
	Appointments *MongoAppointmentStore
	Enquiries    *MongoEnquiryStore
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		Users:        &MongoUserStore{coll: db.Collection("users")},
		Appointments: &MongoAppointmentStore{coll: db.Collection("appointments")},
		Enquiries:    &MongoEnquiryStore{coll: db.Collection("enquiries")},
	}
}

// EnsureIndexes creates the unique email index that backs the
// duplicate-registration check. Safe to call on every startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.Users.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

type MongoUserStore struct {
	coll *mongo.Collection
}

func (s *MongoUserStore) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := s.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

type MongoAppointmentStore struct {
	coll *mongo.Collection
}

func (s *MongoAppointmentStore) Create(ctx context.Context, apt *models.Appointment) error {
	now := time.Now().UTC()
	if apt.ID.IsZero() {
		apt.ID = primitive.NewObjectID()
	}
	apt.CreatedAt = now
	apt.UpdatedAt = now

	_, err := s.coll.InsertOne(ctx, apt)
	return err
}

func (s *MongoAppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *MongoAppointmentStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

type MongoEnquiryStore struct {
	coll *mongo.Collection
}

func (s *MongoEnquiryStore) Create(ctx context.Context, enq *models.Enquiry) error {
	now := time.Now().UTC()
	if enq.ID.IsZero() {
		enq.ID = primitive.NewObjectID()
	}
	enq.CreatedAt = now
	enq.UpdatedAt = now

	_, err := s.coll.InsertOne(ctx, enq)
	return err
}

func (s *MongoEnquiryStore) List(ctx context.Context) ([]models.Enquiry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	enquiries := make([]models.Enquiry, 0)
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (s *MongoEnquiryStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}
