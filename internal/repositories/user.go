package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

const usersCollection = "users"

// publicUserProjection excludes the credential fields from read results.
var publicUserProjection = bson.M{
	"password_hash":          0,
	"reset_password_token":   0,
	"reset_password_expires": 0,
}

// EnsureUserIndexes creates the unique username/email indexes. Uniqueness
// of both fields is enforced by the store, not by application checks alone.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

// UserReadRepository provides read-only access to the users collection.
type UserReadRepository struct {
	col *mongo.Collection
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{col: db.Collection(usersCollection)}
}

// GetByEmail returns the user with the given email including the password
// hash, for credential checks only. Returns nil when no user matches.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("users find by email failed", "err", err)
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail returns a user matching either field. Used for
// pre-registration existence checks. Returns nil when no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	opts := options.FindOne().SetProjection(publicUserProjection)

	var user models.User
	err := r.col.FindOne(ctx, filter, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("users find by username or email failed", "err", err)
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user by hex object id without credential fields.
// Returns nil when the id is unknown.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	opts := options.FindOne().SetProjection(publicUserProjection)

	var user models.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("users find by id failed", "id", id, "err", err)
		return nil, err
	}
	return &user, nil
}

// GetByIDWithPassword returns the user including the password hash,
// for password-change verification.
func (r *UserReadRepository) GetByIDWithPassword(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var user models.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("users find by id failed", "id", id, "err", err)
		return nil, err
	}
	return &user, nil
}

// List returns up to 100 users, newest first, without credential fields.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().
		SetProjection(publicUserProjection).
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(100)

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Log.Errorw("users list failed", "err", err)
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserWriteRepository provides write access to the users collection.
type UserWriteRepository struct {
	col *mongo.Collection
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{col: db.Collection(usersCollection)}
}

// Save inserts a new user document and returns its generated id.
// The password must already be hashed by the caller.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		logger.Log.Errorw("users insert failed", "username", user.Username, "err", err)
		return primitive.NilObjectID, err
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

// UpdateProfile sets the provided profile fields and returns the updated
// user without credential fields. Nil pointers leave fields untouched.
// Returns nil when the id is unknown.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id string, fullName, bio, avatar *string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.M{"updated_at": time.Now()}
	if fullName != nil {
		set["full_name"] = *fullName
	}
	if bio != nil {
		set["bio"] = *bio
	}
	if avatar != nil {
		set["avatar"] = *avatar
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(publicUserProjection)

	var user models.User
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("users profile update failed", "id", id, "err", err)
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	update := bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	}}

	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		logger.Log.Errorw("users password update failed", "id", id, "err", err)
	}
	return err
}

// UpdateLastLogin stamps the login time.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"last_login": at}})
	if err != nil {
		logger.Log.Errorw("users last login update failed", "id", id, "err", err)
	}
	return err
}

// Delete removes the user document. Reports whether a document was deleted.
func (r *UserWriteRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Log.Errorw("users delete failed", "id", id, "err", err)
		return false, err
	}
	return res.DeletedCount > 0, nil
}
