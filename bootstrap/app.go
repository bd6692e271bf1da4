package bootstrap

import (
	"github.com/charmbracelet/log"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/rhythmiq/rhythmiq-server/util/media_store"
	"github.com/spf13/afero"
)

// MediaURLPrefix 媒体文件的公开访问前缀
const MediaURLPrefix = "/media"

type Application struct {
	Env    *Env
	Mongo  mongo.Client
	Store  *media_store.Store
	Logger *log.Logger
}

func App() Application {
	app := &Application{}
	app.Env = NewEnv()
	app.Logger = NewLogger(app.Env)
	app.Mongo = NewMongoDatabase(app.Env)
	app.Store = NewMediaStore(app.Env, afero.NewOsFs())
	return *app
}

func NewMediaStore(env *Env, fs afero.Fs) *media_store.Store {
	return media_store.NewStore(fs, env.MediaRoot, MediaURLPrefix)
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
