package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-30"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-30") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.AppHost != "localhost" || cfg.AppPort != "8080" || cfg.LogLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.AppHost, cfg.AppPort, cfg.LogLevel)
	}

	// MongoDB
	if cfg.MongoURI != "mongodb://localhost:27017" || cfg.MongoDB != "bookclub" {
		t.Errorf("unexpected mongo config")
	}

	// PostgreSQL
	if cfg.PGHost != "localhost" || cfg.PGPort != 5432 || cfg.PGUser != "user" || cfg.PGPassword != "password" || cfg.PGDB != "bookclub" ||
		cfg.PGMaxOpenConns != 16 || cfg.PGMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if cfg.RedisHost != "localhost" || cfg.RedisPort != 6379 || cfg.RedisDB != 0 || cfg.RedisPassword != "" || cfg.RedisPoolSize != 10 {
		t.Errorf("unexpected redis config")
	}

	// Kafka is off by default
	if cfg.KafkaAddr != "" || cfg.KafkaTopic != "reading-sessions" {
		t.Errorf("unexpected kafka config")
	}

	// JWT
	if cfg.JWTSecretKey != defaultJWTSecret || cfg.JWTAccessExp != 168*time.Hour || cfg.JWTRefreshExp != 720*time.Hour {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("MONGO_URI", "mongodb://mongo.example.com:27017")
	os.Setenv("MONGO_DB", "bookclub_test")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "sessions")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_ACCESS_EXP", "24h")
	os.Setenv("JWT_REFRESH_EXP", "48h")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppHost != "127.0.0.1" || cfg.AppPort != "9090" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.MongoURI != "mongodb://mongo.example.com:27017" || cfg.MongoDB != "bookclub_test" {
		t.Errorf("unexpected mongo config")
	}
	if cfg.PGHost != "pg.example.com" || cfg.PGPort != 5433 || cfg.PGUser != "admin" || cfg.PGPassword != "secret" || cfg.PGDB != "mydb" ||
		cfg.PGMaxOpenConns != 20 || cfg.PGMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.RedisHost != "redis.example.com" || cfg.RedisPort != 6380 || cfg.RedisDB != 2 || cfg.RedisPassword != "redispass" || cfg.RedisPoolSize != 15 {
		t.Errorf("unexpected redis config")
	}
	if cfg.KafkaAddr != "kafka.example.com:9092" || cfg.KafkaTopic != "sessions" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.JWTSecretKey != "supersecret" || cfg.JWTAccessExp != 24*time.Hour || cfg.JWTRefreshExp != 48*time.Hour {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_BadNumber(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected parseConfig to fail on malformed POSTGRES_PORT")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Mongo container ------------------
	mongoReq := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: mongoReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer mongoContainer.Terminate(ctx)

	mongoHost, _ := mongoContainer.Host(ctx)
	mongoPort, _ := mongoContainer.MappedPort(ctx, "27017")

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cfg := &Config{
		AppHost:  "127.0.0.1",
		AppPort:  "8086",
		LogLevel: "debug",

		MongoURI: "mongodb://" + mongoHost + ":" + mongoPort.Port(),
		MongoDB:  "testdb",

		PGHost:         pgHost,
		PGPort:         pgPort.Int(),
		PGUser:         "user",
		PGPassword:     "password",
		PGDB:           "testdb",
		PGMaxOpenConns: 5,
		PGMaxIdleConns: 2,

		RedisHost:     redisHost,
		RedisPort:     redisPort.Int(),
		RedisPoolSize: 10,

		JWTSecretKey:  "testsecret",
		JWTAccessExp:  time.Hour,
		JWTRefreshExp: 2 * time.Hour,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
