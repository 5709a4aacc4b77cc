package repo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"ResumeBot/config"
	"ResumeBot/model"
)

const resumesRoot = "resumes"

// ArchivedResume is one delivered résumé as stored under resumes/<userID>/<key>.
type ArchivedResume struct {
	Key            string       `json:"-"`
	Record         model.Record `json:"record"`
	DocumentFileID string       `json:"documentFileId,omitempty"`
	FileName       string       `json:"fileName"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// ResumeArchive keeps a copy of every résumé the bot delivered.
type ResumeArchive interface {
	SaveResume(ctx context.Context, userID int64, resume ArchivedResume) (string, error)
}

// FirebaseConnector struct to hold Firebase client and database reference
type FirebaseConnector struct {
	app    *firebase.App
	client *db.Client
}

var _ ResumeArchive = (*FirebaseConnector)(nil)

// NewFirebaseConnector creates a new Firebase connector
func NewFirebaseConnector(ctx context.Context, serviceAccountKeyPath string, databaseURL string) (*FirebaseConnector, error) {
	opt := option.WithCredentialsFile(serviceAccountKeyPath)

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return &FirebaseConnector{
		app:    app,
		client: client,
	}, nil
}

// InitializeFirebase builds the connector from configuration. It returns nil
// without error when the archive is not configured.
func InitializeFirebase(ctx context.Context, cfg *config.Firebase) (*FirebaseConnector, error) {
	if cfg == nil {
		return nil, nil
	}
	fc, err := NewFirebaseConnector(ctx, cfg.ServiceAccountKeyPath, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating Firebase connector: %w", err)
	}
	return fc, nil
}

func userPath(userID int64) string {
	return resumesRoot + "/" + strconv.FormatInt(userID, 10)
}

// SaveResume pushes a new archive entry for the user and returns its key.
func (fc *FirebaseConnector) SaveResume(ctx context.Context, userID int64, resume ArchivedResume) (string, error) {
	if resume.CreatedAt.IsZero() {
		resume.CreatedAt = time.Now().UTC()
	}
	newRef, err := fc.client.NewRef(userPath(userID)).Push(ctx, resume)
	if err != nil {
		return "", fmt.Errorf("error saving resume: %w", err)
	}
	return newRef.Key, nil
}

// ReadResume reads one archive entry by key.
func (fc *FirebaseConnector) ReadResume(ctx context.Context, userID int64, key string) (*ArchivedResume, error) {
	var resume ArchivedResume
	if err := fc.client.NewRef(userPath(userID)).Child(key).Get(ctx, &resume); err != nil {
		return nil, fmt.Errorf("error reading resume: %w", err)
	}
	if resume.CreatedAt.IsZero() && resume.FileName == "" {
		return nil, fmt.Errorf("resume %s not found for user %d", key, userID)
	}
	resume.Key = key
	return &resume, nil
}

// ListResumes lists a user's archive, oldest first.
func (fc *FirebaseConnector) ListResumes(ctx context.Context, userID int64) ([]ArchivedResume, error) {
	var entries map[string]ArchivedResume
	if err := fc.client.NewRef(userPath(userID)).Get(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error listing resumes: %w", err)
	}
	return collect(entries), nil
}

// DeleteResumes removes the whole archive of a user.
func (fc *FirebaseConnector) DeleteResumes(ctx context.Context, userID int64) error {
	if err := fc.client.NewRef(userPath(userID)).Delete(ctx); err != nil {
		return fmt.Errorf("error deleting resumes: %w", err)
	}
	return nil
}

func collect(entries map[string]ArchivedResume) []ArchivedResume {
	list := make([]ArchivedResume, 0, len(entries))
	for key, entry := range entries {
		entry.Key = key
		list = append(list, entry)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].Key < list[j].Key
	})
	return list
}
