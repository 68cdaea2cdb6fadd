//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingua/internal/adapter/httpapi"
	"github.com/eslsoft/lingua/internal/adapter/repository"
	"github.com/eslsoft/lingua/internal/infrastructure/config"
	"github.com/eslsoft/lingua/internal/infrastructure/database"
	"github.com/eslsoft/lingua/internal/infrastructure/server"
	"github.com/eslsoft/lingua/internal/usecase"
	"github.com/eslsoft/lingua/pkg/grammar"
)

var configSet = wire.NewSet(
	config.Load,
	provideRewardLocation,
)

var databaseSet = wire.NewSet(
	database.NewEntClient,
)

var repositorySet = wire.NewSet(
	repository.NewAnswerEventRepository,
	repository.NewUnitKnowledgeRepository,
	repository.NewXpEventRepository,
	repository.NewUserXpRepository,
	repository.NewBadgeRepository,
	repository.NewCatalogRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewKnowledgeUsecase,
	usecase.NewAnswerUsecase,
	usecase.NewSessionUsecase,
	usecase.NewRewardUsecase,
	usecase.NewSuggestionUsecase,
)

var grammarSet = wire.NewSet(
	grammar.NewVerbs,
	grammar.NewValidator,
)

var apiSet = wire.NewSet(
	httpapi.NewHandler,
	provideAPIRoutes,
)

var serverSet = wire.NewSet(
	server.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		grammarSet,
		apiSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server"),
	)
	return nil, nil, nil
}
