package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ModeDirectStorage = "direct-storage"
	ModeLocalManaged  = "local-managed"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioRegion    string

	PublicBucket    string
	PrivateBucket   string
	PublicEdgeHost  string
	PrivateEdgeHost string

	// DownloadURLExpiry doubles as the signing window width for download URLs.
	DownloadURLExpiry time.Duration
	UploadGrantExpiry time.Duration
	StorageTimeout    time.Duration

	ChunkSize       int
	PaginationLimit int
	DeploymentMode  string

	JWTSecret      string
	AccessTokenTTL time.Duration

	RedisAddr     string
	RedisPassword string
}

// Direct reports whether clients upload straight to object storage.
func (s *Settings) Direct() bool {
	return s.DeploymentMode == ModeDirectStorage
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	for _, key := range []string{
		"MARIADB_DSN",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"PUBLIC_IMAGES_BUCKET",
		"PRIVATE_IMAGES_BUCKET",
		"JWT_SECRET",
	} {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("MARIADB_MAX_OPEN_CONN", 25)
	viper.SetDefault("MARIADB_MAX_IDLE_CONNS", 25)
	viper.SetDefault("MARIADB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("MINIO_REGION", "us-west-2")
	viper.SetDefault("DOWNLOAD_URL_EXPIRY", int((7 * 24 * time.Hour).Seconds()))
	viper.SetDefault("UPLOAD_GRANT_EXPIRY", int(time.Hour.Seconds()))
	viper.SetDefault("STORAGE_TIMEOUT", 10)
	viper.SetDefault("UPLOAD_CHUNK_SIZE", 32*1024)
	viper.SetDefault("IMAGE_PAGINATION", 100)
	viper.SetDefault("DEPLOYMENT_MODE", ModeDirectStorage)
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*8)

	mode := viper.GetString("DEPLOYMENT_MODE")
	if mode != ModeDirectStorage && mode != ModeLocalManaged {
		return nil, fmt.Errorf("DEPLOYMENT_MODE should be %q or %q, got %q", ModeDirectStorage, ModeLocalManaged, mode)
	}

	// the signing window must leave room for the 1h of signature validity
	// beyond the cacheable age
	urlExpiry := time.Duration(viper.GetInt("DOWNLOAD_URL_EXPIRY")) * time.Second
	if urlExpiry <= time.Hour {
		return nil, fmt.Errorf("DOWNLOAD_URL_EXPIRY should be longer than an hour, got %s", urlExpiry)
	}

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		MinioRegion:    viper.GetString("MINIO_REGION"),

		PublicBucket:    viper.GetString("PUBLIC_IMAGES_BUCKET"),
		PrivateBucket:   viper.GetString("PRIVATE_IMAGES_BUCKET"),
		PublicEdgeHost:  viper.GetString("PUBLIC_IMAGES_EDGE_HOST"),
		PrivateEdgeHost: viper.GetString("PRIVATE_IMAGES_EDGE_HOST"),

		DownloadURLExpiry: urlExpiry,
		UploadGrantExpiry: time.Duration(viper.GetInt("UPLOAD_GRANT_EXPIRY")) * time.Second,
		StorageTimeout:    time.Duration(viper.GetInt("STORAGE_TIMEOUT")) * time.Second,

		ChunkSize:       viper.GetInt("UPLOAD_CHUNK_SIZE"),
		PaginationLimit: viper.GetInt("IMAGE_PAGINATION"),
		DeploymentMode:  mode,

		JWTSecret:      viper.GetString("JWT_SECRET"),
		AccessTokenTTL: time.Duration(viper.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")) * time.Minute,

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),
	}, nil
}
