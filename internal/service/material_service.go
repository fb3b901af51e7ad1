package service

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"path/filepath"
	"physics_master_backend/internal/model"
	"physics_master_backend/internal/repository"
	"physics_master_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	materialListCacheKey = "study_materials:list"
	materialListCacheTTL = 5 * time.Minute
)

// MaterialService manages study materials: metadata in the DB, files behind
// the storage provider, and a short-lived redis cache for the public listing.
type MaterialService struct {
	Repo    *repository.MaterialRepository
	Storage *StorageService
	Redis   *redis.Client
}

func NewMaterialService(repo *repository.MaterialRepository, storage *StorageService, rdb *redis.Client) *MaterialService {
	return &MaterialService{
		Repo:    repo,
		Storage: storage,
		Redis:   rdb,
	}
}

type MaterialCreateRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	FileURL     string `form:"file_url"` // external link, used when no file is attached
	FileType    string `form:"file_type"`
	Subject     string `form:"subject"`
}

func (s *MaterialService) Create(ctx context.Context, req *MaterialCreateRequest, file *multipart.FileHeader) (*model.StudyMaterial, error) {
	m := &model.StudyMaterial{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		FileType:    req.FileType,
		Subject:     req.Subject,
	}
	if m.FileType == "" {
		m.FileType = "pdf"
	}
	if m.Subject == "" {
		m.Subject = "general"
	}

	if file != nil {
		src, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()

		objectName := "materials/" + model.GenerateUUID() + filepath.Ext(file.Filename)
		url, err := s.Storage.Upload(ctx, objectName, src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		m.FileURL = url
		m.FileObject = objectName
	}

	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return m, nil
}

// List serves from redis when possible and falls back to the DB. Only the
// unfiltered listing is cached; subject-filtered queries go straight through.
func (s *MaterialService) List(ctx context.Context, subject string) ([]model.StudyMaterial, error) {
	if s.Redis != nil && subject == "" {
		if val, err := s.Redis.Get(ctx, materialListCacheKey).Result(); err == nil {
			var cached []model.StudyMaterial
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	ms, err := s.Repo.List(subject)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil && subject == "" {
		if data, err := json.Marshal(ms); err == nil {
			s.Redis.Set(ctx, materialListCacheKey, data, materialListCacheTTL)
		}
	}

	return ms, nil
}

func (s *MaterialService) Delete(ctx context.Context, id string) error {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	if m.FileObject != "" {
		if err := s.Storage.Delete(ctx, m.FileObject); err != nil {
			logger.Log.Warn("failed to remove material file",
				zap.String("object", m.FileObject), zap.Error(err))
		}
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *MaterialService) invalidateCache(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, materialListCacheKey)
	}
}
