package mongodb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/supakorn-kn/go-library/env"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBConn struct {
	Client *mongo.Client
	opts   *options.ClientOptions
	dbName string
}

func (db *MongoDBConn) Connect() error {

	client, err := mongo.Connect(context.TODO(), db.opts)
	if err != nil {
		return err
	}

	if err := client.Ping(context.TODO(), nil); err != nil {
		client.Disconnect(context.TODO())
		return err
	}

	db.Client = client

	return nil
}

func (db *MongoDBConn) Disconnect() error {
	return db.Client.Disconnect(context.TODO())
}

func (db *MongoDBConn) GetDatabase() *mongo.Database {
	return db.Client.Database(db.dbName)
}

func (db *MongoDBConn) GetCollection(collectionName string) *mongo.Collection {
	return db.GetDatabase().Collection(collectionName)
}

func New(config env.MongoDBConfig) (*MongoDBConn, error) {

	if config.Host == "" {
		return nil, fmt.Errorf("MongoDB host must not be empty")
	}

	if config.DB == "" {
		return nil, fmt.Errorf("MongoDB database name must not be empty")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(URI(config)).SetServerAPIOptions(serverAPI)

	return &MongoDBConn{
		opts:   opts,
		dbName: config.DB,
	}, nil
}

func URI(config env.MongoDBConfig) string {

	uri := url.URL{Scheme: "mongodb", Host: fmt.Sprintf("%s:%d", config.Host, config.Port)}
	if config.User != "" {
		uri.User = url.UserPassword(config.User, config.Password)
	}

	return uri.String()
}

func InitConnection(config env.MongoDBConfig) (*MongoDBConn, error) {

	mongodbConn, err := New(config)
	if err != nil {
		return nil, err
	}

	if err := mongodbConn.Connect(); err != nil {
		return nil, err
	}

	return mongodbConn, nil
}
