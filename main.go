package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/safetynet-alerts/api"
	"github.com/bitmark-inc/safetynet-alerts/seed"
	"github.com/bitmark-inc/safetynet-alerts/store"
)

var (
	server    *api.Server
	dataStore store.RecordStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// .env is optional, values there become plain environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Could not load .env file:", err)
	}

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("safetynet")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("data.backend", "file")
	viper.SetDefault("data.file", "runtime-data/data.json")
}

// newBackend selects the document backend named by data.backend
func newBackend(ctx context.Context) (store.Backend, error) {
	switch backend := viper.GetString("data.backend"); backend {
	case "file":
		return store.NewFileBackend(viper.GetString("data.file")), nil
	case "memory":
		return store.NewMemoryBackend(nil), nil
	case "mongo":
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			return nil, fmt.Errorf("create mongo client with error: %s", err)
		}

		if err := mongoClient.Connect(ctx); nil != err {
			return nil, fmt.Errorf("connect mongo database with error: %s", err)
		}
		return store.NewMongoBackend(mongoClient, viper.GetString("mongo.database"), viper.GetString("mongo.key")), nil
	case "s3":
		return store.NewS3Backend(ctx, store.S3Config{
			Bucket:    viper.GetString("s3.bucket"),
			Key:       viper.GetString("s3.key"),
			Region:    viper.GetString("s3.region"),
			Endpoint:  viper.GetString("s3.endpoint"),
			PathStyle: viper.GetBool("s3.path_style"),
		})
	default:
		return nil, fmt.Errorf("unknown data backend %q", backend)
	}
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if dataStore != nil {
			log.Info("Shutting down data store")
			if err := dataStore.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	backend, err := newBackend(initialCtx)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Selected data backend: ", backend.Name())

	ds := store.NewDataStore(backend, store.Seeder(seed.Template(viper.GetString("data.seed"))))
	if err := ds.Load(); err != nil {
		sentry.CaptureException(err)
		log.Panic(err)
	}
	dataStore = ds

	// Init http server
	server = api.NewServer(dataStore)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
