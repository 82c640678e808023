package structs

import "go.mongodb.org/mongo-driver/bson/primitive"

// Preset is the default order form for one dashboard page.
type Preset struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Page          string             `bson:"page" json:"page"`
	Tradingsymbol string             `bson:"tradingsymbol" json:"tradingsymbol"`
	Exchange      string             `bson:"exchange" json:"exchange"`
	OrderType     string             `bson:"order_type" json:"order_type"`
	PriceType     string             `bson:"price_type" json:"price_type"`
	ProductType   string             `bson:"product_type" json:"product_type"`
	Validity      string             `bson:"validity" json:"validity"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Amount        float64            `bson:"amount" json:"amount"`
	Price         float64            `bson:"price" json:"price"`
	AlertPrice    float64            `bson:"alert_price,omitempty" json:"alert_price,omitempty"`
	Condition     string             `bson:"condition,omitempty" json:"condition,omitempty"`
	Remarks       string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
}
