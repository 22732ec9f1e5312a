package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userhub/identity-api/internal/core/domain"
)

const avatarBucket = "avatars"

// AvatarStore keeps avatar images in a GridFS bucket, one file per user,
// named by user id. The content type travels as file metadata.
type AvatarStore struct {
	bucket *gridfs.Bucket
}

func NewAvatarStore(db *mongo.Database) (*AvatarStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(avatarBucket))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &AvatarStore{bucket: bucket}, nil
}

// Save replaces the user's avatar with the image read from r.
func (s *AvatarStore) Save(ctx context.Context, userID, contentType string, r io.Reader) error {
	if deadline, ok := ctx.Deadline(); ok {
		_ = s.bucket.SetWriteDeadline(deadline)
	}

	if err := s.deleteExisting(ctx, userID); err != nil {
		return err
	}

	stream, err := s.bucket.OpenUploadStream(userID,
		options.GridFSUpload().SetMetadata(bson.D{{Key: "content_type", Value: contentType}}))
	if err != nil {
		return fmt.Errorf("open avatar upload: %w", err)
	}

	if _, err := io.Copy(stream, r); err != nil {
		_ = stream.Close()
		return fmt.Errorf("write avatar: %w", err)
	}
	if err := stream.Close(); err != nil {
		return fmt.Errorf("close avatar upload: %w", err)
	}
	return nil
}

// Open returns the avatar stream and its recorded content type.
func (s *AvatarStore) Open(ctx context.Context, userID string) (io.ReadCloser, string, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = s.bucket.SetReadDeadline(deadline)
	}

	stream, err := s.bucket.OpenDownloadStreamByName(userID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, "", domain.ErrAvatarNotFound
		}
		return nil, "", fmt.Errorf("open avatar: %w", err)
	}

	contentType := "application/octet-stream"
	if file := stream.GetFile(); file != nil && file.Metadata != nil {
		if v, err := file.Metadata.LookupErr("content_type"); err == nil {
			if ct, ok := v.StringValueOK(); ok {
				contentType = ct
			}
		}
	}
	return stream, contentType, nil
}

func (s *AvatarStore) deleteExisting(ctx context.Context, userID string) error {
	cursor, err := s.bucket.Find(bson.M{"filename": userID})
	if err != nil {
		return fmt.Errorf("find avatar: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var file struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return fmt.Errorf("decode avatar file: %w", err)
		}
		if err := s.bucket.Delete(file.ID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
			return fmt.Errorf("delete avatar: %w", err)
		}
	}
	return cursor.Err()
}
