package blob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azblobblob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
	"go.uber.org/zap"

	"github.com/aniqelectronic/MeterDemo-Backend-Linux/internal/config"
)

// SASValidity is how long an uploaded receipt link stays readable. Kiosk
// users scan the QR right away, so a day is generous.
const SASValidity = 24 * time.Hour

var ErrNotConfigured = errors.New("blob storage not configured")

// Uploader stores a rendered receipt and returns a time-limited read URL.
type Uploader interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

type uploader struct {
	client    *azblob.Client
	cred      *azblob.SharedKeyCredential
	log       *zap.Logger
	account   string
	container string
}

// disabled keeps the rest of the app working on deployments without a
// storage account. Uploads fail fast with a recognizable error.
type disabled struct{}

func (disabled) Upload(context.Context, string, []byte, string) (string, error) {
	return "", ErrNotConfigured
}

func NewUploader(cfg config.Config, log *zap.Logger) (Uploader, error) {
	if cfg.Blob.AccountName == "" || cfg.Blob.AccountKey == "" {
		log.Warn("blob storage disabled, receipt uploads will fail")
		return disabled{}, nil
	}

	cred, err := azblob.NewSharedKeyCredential(cfg.Blob.AccountName, cfg.Blob.AccountKey)
	if err != nil {
		return nil, err
	}
	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net/", cfg.Blob.AccountName)
	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, cred, nil)
	if err != nil {
		return nil, err
	}

	return &uploader{
		client:    client,
		cred:      cred,
		log:       log,
		account:   cfg.Blob.AccountName,
		container: cfg.Blob.Container,
	}, nil
}

func (u *uploader) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	_, err := u.client.CreateContainer(ctx, u.container, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return "", err
	}

	_, err = u.client.UploadBuffer(ctx, u.container, name, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &azblobblob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return "", err
	}

	perms := sas.BlobPermissions{Read: true}
	sig, err := sas.BlobSignatureValues{
		Protocol:      sas.ProtocolHTTPS,
		ExpiryTime:    time.Now().UTC().Add(SASValidity),
		Permissions:   perms.String(),
		ContainerName: u.container,
		BlobName:      name,
	}.SignWithSharedKey(u.cred)
	if err != nil {
		return "", err
	}

	u.log.Info("receipt uploaded",
		zap.String("blob", name),
		zap.String("container", u.container),
	)
	return fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s?%s",
		u.account, u.container, name, sig.Encode()), nil
}
