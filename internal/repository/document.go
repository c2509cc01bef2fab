package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository - where strategy guides come from. The evaluator never sees the source.
type DocumentRepository interface {
	GetByID(ctx context.Context, id string) (string, error)
}

type fileDocument struct {
	baseDir string
}

// NewFileDocumentRepository - ids are paths relative to baseDir; absolute ids are used as-is.
func NewFileDocumentRepository(baseDir string) DocumentRepository {
	return &fileDocument{
		baseDir: baseDir,
	}
}

func (that *fileDocument) GetByID(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := id
	if !filepath.IsAbs(path) {
		path = filepath.Join(that.baseDir, id)
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
	}

	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return string(content), nil
}

// RedisDocumentRepository - strategy guides stored as plain string values.
type RedisDocumentRepository struct {
	client *redis.Client
}

func NewRedisDocumentRepository(client *redis.Client) *RedisDocumentRepository {
	return &RedisDocumentRepository{
		client: client,
	}
}

func (that *RedisDocumentRepository) Put(ctx context.Context, id, document string) error {
	err := that.client.Set(ctx, id, document, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set document: %w", err)
	}

	return nil
}

func (that *RedisDocumentRepository) GetByID(ctx context.Context, id string) (string, error) {
	response, err := that.client.Get(ctx, id).Result()

	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}

	if err != nil {
		return "", fmt.Errorf("failed to get document by id: %w", err)
	}

	return response, nil
}
