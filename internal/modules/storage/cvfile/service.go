package cvfile

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/modules/content/cv"
)

// PresignTTL bounds how long a download link stays valid.
const PresignTTL = 15 * time.Minute

// Service stores CV version files in object storage and resolves
// download URLs. Version metadata stays in the cv module; this service
// only owns the bytes.
type Service struct {
	client  *s3.Client
	presign *s3.PresignClient
	cfg     config.StorageConfig
	cv      *cv.Service
}

func NewService(client *s3.Client, cfg config.StorageConfig, cvSvc *cv.Service) *Service {
	s := &Service{client: client, cfg: cfg, cv: cvSvc}
	if client != nil {
		s.presign = s3.NewPresignClient(client)
	}
	return s
}

// Configured reports whether uploads can be accepted.
func (s *Service) Configured() bool { return s.client != nil }

// Upload stores the file under cv/{orgID}/{versionID}/{filename} and
// records the object against the version. The version must exist and
// belong to orgID.
func (s *Service) Upload(ctx context.Context, orgID, versionID, fileName, mimeType string, size int64, body io.Reader) (string, error) {
	if !s.Configured() {
		return "", ErrStorageNotConfigured
	}
	version, err := s.cv.VersionForOrg(ctx, versionID, orgID)
	if err != nil {
		return "", err
	}
	if version == nil {
		return "", cv.ErrNotOwned
	}

	key := objectKey(orgID, versionID, fileName)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(mimeType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("put cv object: %w", err)
	}
	if err := s.cv.AttachObject(ctx, versionID, key, fileName, size, mimeType); err != nil {
		return "", err
	}
	return key, nil
}

// DownloadURL resolves where a version's file can be fetched. Link-backed
// versions return their external URL as-is; uploaded versions get either
// a custom-domain URL or a presigned GET.
func (s *Service) DownloadURL(ctx context.Context, versionID string) (string, error) {
	version, err := s.cv.VersionByID(ctx, versionID)
	if err != nil {
		return "", err
	}
	if version == nil || !version.IsActive {
		return "", ErrVersionNotFound
	}
	if version.ObjectKey == "" {
		if version.ExternalURL == "" {
			return "", ErrVersionNotFound
		}
		return version.ExternalURL, nil
	}
	if s.cfg.CustomDomain != "" {
		return strings.TrimRight(s.cfg.CustomDomain, "/") + "/" + version.ObjectKey, nil
	}
	if s.presign == nil {
		return "", ErrStorageNotConfigured
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(version.ObjectKey),
	}, s3.WithPresignExpires(PresignTTL))
	if err != nil {
		return "", fmt.Errorf("presign cv object: %w", err)
	}
	return req.URL, nil
}

// objectKey flattens the file name so uploads cannot traverse the key
// space.
func objectKey(orgID, versionID, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "cv.pdf"
	}
	return fmt.Sprintf("cv/%s/%s/%s", orgID, versionID, base)
}
