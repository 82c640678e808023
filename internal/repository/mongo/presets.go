package mongo

import (
	"context"

	"integrate/internal/repository/mongo/structs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PresetsRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewPresetsRepository(conn *mongo.Client, dbName string) *PresetsRepository {
	collection := conn.Database(dbName).Collection("presets")

	return &PresetsRepository{conn: conn, collection: collection}
}

func (r *PresetsRepository) SetDefault() error {
	presets := []structs.Preset{
		{
			Page:          "cnc_buy",
			Tradingsymbol: "HPL-EQ",
			Exchange:      "NSE",
			OrderType:     "BUY",
			PriceType:     "LIMIT",
			ProductType:   "CNC",
			Validity:      "DAY",
			Quantity:      0,
			Amount:        55000,
			Price:         588,
		},
		{
			Page:          "single_gtt",
			Tradingsymbol: "BDL-EQ",
			Exchange:      "NSE",
			OrderType:     "SELL",
			Quantity:      1,
			AlertPrice:    1850,
			Price:         1855,
			Condition:     "LTP_BELOW",
			Remarks:       "Single GTT via API",
		},
		{
			Page:          "oco_gtt",
			Tradingsymbol: "MRPL-EQ",
			Exchange:      "NSE",
			OrderType:     "SELL",
			Quantity:      93,
			Price:         164,
			AlertPrice:    144,
			Remarks:       "OCO GTT via API",
		},
	}

	for _, preset := range presets {
		check, err := r.Load(preset.Page)
		if err != nil && err != mongo.ErrNoDocuments {
			return err
		}

		if primitive.ObjectID.IsZero(check.ID) {
			if _, err := r.collection.InsertOne(context.TODO(), preset); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *PresetsRepository) Load(page string) (*structs.Preset, error) {
	var result structs.Preset

	if err := r.collection.FindOne(context.TODO(), bson.D{{Key: "page", Value: page}}).Decode(&result); err != nil {
		return &result, err
	}

	return &result, nil
}

func (r *PresetsRepository) Update(preset *structs.Preset) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{{Key: "page", Value: preset.Page}},
		bson.D{{Key: "$set", Value: preset}},
	)
	if err != nil {
		return err
	}

	return nil
}
