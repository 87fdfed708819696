package arena

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/ChizhovVadim/OthelloGo/pkg/common"
)

// GameRecord is one finished arena game.
type GameRecord struct {
	ID           string    `bson:"_id"`
	TournamentID string    `bson:"tournament_id"`
	GameNumber   int       `bson:"game_number"`
	Black        string    `bson:"black"`
	White        string    `bson:"white"`
	Moves        []string  `bson:"moves"`
	BlackDisks   int       `bson:"black_disks"`
	WhiteDisks   int       `bson:"white_disks"`
	Result       string    `bson:"result"`
	FinishedAt   time.Time `bson:"finished_at"`
}

type ResultRepository interface {
	SaveGame(ctx context.Context, record GameRecord) error
}

func newGameRecord(tournamentID string, players []Player, res gameResult) GameRecord {
	var info = res.gameInfo
	var black, white = players[info.pairing.a].Name, players[info.pairing.b].Name
	if !info.playerAIsBlack {
		black, white = white, black
	}
	var moves = make([]string, len(res.moves))
	for i, move := range res.moves {
		moves[i] = common.SquareName(move)
	}
	return GameRecord{
		ID:           info.id.String(),
		TournamentID: tournamentID,
		GameNumber:   info.gameNumber,
		Black:        black,
		White:        white,
		Moves:        moves,
		BlackDisks:   res.blackDisks,
		WhiteDisks:   res.whiteDisks,
		Result:       gameResultString(res.result),
		FinishedAt:   time.Now().UTC(),
	}
}

// MongoResults writes game records to the "games" collection.
type MongoResults struct {
	client     *mongo.Client
	collection *mongo.Collection
	log        *zap.SugaredLogger
}

func NewMongoResults(ctx context.Context, uri, database string, log *zap.SugaredLogger) (*MongoResults, error) {
	ctxConnect, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctxConnect, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect mongodb")
	}
	if err := client.Ping(ctxConnect, nil); err != nil {
		client.Disconnect(ctx)
		return nil, errors.Wrap(err, "ping mongodb")
	}
	log.Infow("connected to mongodb", "database", database)
	return &MongoResults{
		client:     client,
		collection: client.Database(database).Collection("games"),
		log:        log,
	}, nil
}

func (m *MongoResults) SaveGame(ctx context.Context, record GameRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := m.collection.InsertOne(ctx, record); err != nil {
		return errors.Wrapf(err, "insert game %v", record.ID)
	}
	return nil
}

// CountGames counts the records of a tournament.
func (m *MongoResults) CountGames(ctx context.Context, tournamentID string) (int64, error) {
	n, err := m.collection.CountDocuments(ctx, bson.M{"tournament_id": tournamentID})
	if err != nil {
		return 0, errors.Wrap(err, "count games")
	}
	return n, nil
}

func (m *MongoResults) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
