package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rhythmiq/rhythmiq-server/mongo"
)

func NewMongoDatabase(env *Env) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(mongoURI(env))
	if err != nil {
		log.Fatal("创建 MongoDB 客户端失败", "error", err)
	}
	if err := client.Connect(ctx); err != nil {
		log.Fatal("连接 MongoDB 失败", "error", err)
	}
	if err := client.Ping(ctx); err != nil {
		log.Fatal("MongoDB 不可用", "error", err)
	}

	if err := mongo.CreateIndexes(client.Database(env.DBName)); err != nil {
		log.Fatal("创建索引失败", "error", err)
	}
	log.Info("MongoDB connected", "host", env.DBHost, "db", env.DBName)
	return client
}

func mongoURI(env *Env) string {
	if env.DBUser == "" || env.DBPass == "" {
		return fmt.Sprintf("mongodb://%s:%s", env.DBHost, env.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", env.DBUser, env.DBPass, env.DBHost, env.DBPort)
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Error("关闭 MongoDB 连接失败", "error", err)
		return
	}
	log.Info("Connection to MongoDB closed.")
}
