package entity

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecordType string

const (
	RecordRestaurantInfo RecordType = "restaurant-info"
	RecordCategory       RecordType = "category"
	RecordMenuItem       RecordType = "menu-item"
	RecordTheme          RecordType = "theme"
	RecordPhoto          RecordType = "photo"
	RecordSettings       RecordType = "settings"
	RecordBanner         RecordType = "banner"
)

// TenantRecord is a document in a restaurant's own collection. Data is a
// tagged union discriminated by RecordType, decoded at the storage boundary.
type TenantRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordType RecordType         `bson:"recordType" json:"recordType"`
	Data       RecordData         `bson:"data" json:"data"`
	Order      int                `bson:"order" json:"order"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RecordData is implemented by each concrete payload variant.
type RecordData interface {
	recordType() RecordType
}

type RestaurantInfo struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Logo        string `bson:"logo,omitempty" json:"logo,omitempty"`
	Instagram   string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Facebook    string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	WifiName    string `bson:"wifiName,omitempty" json:"wifiName,omitempty"`
	WifiPass    string `bson:"wifiPass,omitempty" json:"wifiPass,omitempty"`
}

type Category struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
	Hidden      bool   `bson:"hidden,omitempty" json:"hidden,omitempty"`
}

type MenuItem struct {
	CategoryID  primitive.ObjectID `bson:"categoryId" json:"categoryId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Weight      string             `bson:"weight,omitempty" json:"weight,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Hidden      bool               `bson:"hidden,omitempty" json:"hidden,omitempty"`
}

type Theme struct {
	PrimaryColor    string `bson:"primaryColor,omitempty" json:"primaryColor,omitempty"`
	BackgroundColor string `bson:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	FontFamily      string `bson:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	Layout          string `bson:"layout,omitempty" json:"layout,omitempty"`
	ShowImages      bool   `bson:"showImages" json:"showImages"`
}

type Photo struct {
	Image string `bson:"image" json:"image"`
	Alt   string `bson:"alt,omitempty" json:"alt,omitempty"`
}

// Settings holds QR rendering preferences.
type Settings struct {
	QRSize       int    `bson:"qrSize,omitempty" json:"qrSize,omitempty"`
	QRForeground string `bson:"qrForeground,omitempty" json:"qrForeground,omitempty"`
	QRBackground string `bson:"qrBackground,omitempty" json:"qrBackground,omitempty"`
}

type Banner struct {
	Image     string `bson:"image" json:"image"`
	Alt       string `bson:"alt,omitempty" json:"alt,omitempty"`
	Width     int    `bson:"width" json:"width"`
	Height    int    `bson:"height" json:"height"`
	SizeBytes int64  `bson:"sizeBytes" json:"sizeBytes"`
	Format    string `bson:"format" json:"format"`
}

func (RestaurantInfo) recordType() RecordType { return RecordRestaurantInfo }
func (Category) recordType() RecordType       { return RecordCategory }
func (MenuItem) recordType() RecordType       { return RecordMenuItem }
func (Theme) recordType() RecordType          { return RecordTheme }
func (Photo) recordType() RecordType          { return RecordPhoto }
func (Settings) recordType() RecordType       { return RecordSettings }
func (Banner) recordType() RecordType         { return RecordBanner }

// DecodeRecordData unmarshals a raw data subdocument into the concrete
// variant for the given record type.
func DecodeRecordData(t RecordType, raw bson.Raw) (RecordData, error) {
	switch t {
	case RecordRestaurantInfo:
		var v RestaurantInfo
		err := bson.Unmarshal(raw, &v)
		return v, err
	case RecordCategory:
		var v Category
		err := bson.Unmarshal(raw, &v)
		return v, err
	case RecordMenuItem:
		var v MenuItem
		err := bson.Unmarshal(raw, &v)
		return v, err
	case RecordTheme:
		var v Theme
		err := bson.Unmarshal(raw, &v)
		return v, err
	case RecordPhoto:
		var v Photo
		err := bson.Unmarshal(raw, &v)
		return v, err
	case RecordSettings:
		var v Settings
		err := bson.Unmarshal(raw, &v)
		return v, err
	case RecordBanner:
		var v Banner
		err := bson.Unmarshal(raw, &v)
		return v, err
	default:
		return nil, fmt.Errorf("unknown record type %q", t)
	}
}

// OrderUpdate is one point-update in a bulk reorder.
type OrderUpdate struct {
	ID    primitive.ObjectID `json:"id"`
	Order int                `json:"order"`
}
