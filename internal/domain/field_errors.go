package domain

type Field string

const (
	FieldName             Field = "name"
	FieldBrand            Field = "brand"
	FieldDescription      Field = "description"
	FieldPrice            Field = "price"
	FieldCategory         Field = "category"
	FieldStockQuantity    Field = "stockQuantity"
	FieldReleaseDate      Field = "releaseDate"
	FieldProductAvailable Field = "productAvailable"
	FieldImage            Field = "image"
)

// ErrorFields lists the fields that own a message slot, in form order.
var ErrorFields = []Field{
	FieldName,
	FieldBrand,
	FieldDescription,
	FieldPrice,
	FieldCategory,
	FieldStockQuantity,
	FieldReleaseDate,
	FieldImage,
}

// FieldErrors maps form fields to validation messages. An empty string means no error.
// Keys received from the server that have no slot of their own land in Other.
type FieldErrors struct {
	Name          string
	Brand         string
	Description   string
	Price         string
	Category      string
	StockQuantity string
	ReleaseDate   string
	Image         string
	Other         map[string]string
}

func (e *FieldErrors) slot(f Field) *string {
	switch f {
	case FieldName:
		return &e.Name
	case FieldBrand:
		return &e.Brand
	case FieldDescription:
		return &e.Description
	case FieldPrice:
		return &e.Price
	case FieldCategory:
		return &e.Category
	case FieldStockQuantity:
		return &e.StockQuantity
	case FieldReleaseDate:
		return &e.ReleaseDate
	case FieldImage:
		return &e.Image
	}
	return nil
}

func (e FieldErrors) Get(f Field) string {
	if s := e.slot(f); s != nil {
		return *s
	}
	return e.Other[string(f)]
}

func (e *FieldErrors) Set(f Field, message string) {
	if message == "" {
		e.Clear(f)
		return
	}
	if s := e.slot(f); s != nil {
		*s = message
		return
	}
	if e.Other == nil {
		e.Other = make(map[string]string)
	}
	e.Other[string(f)] = message
}

func (e *FieldErrors) Clear(f Field) {
	if s := e.slot(f); s != nil {
		*s = ""
		return
	}
	delete(e.Other, string(f))
}

func (e FieldErrors) Empty() bool {
	for _, f := range ErrorFields {
		if e.Get(f) != "" {
			return false
		}
	}
	return len(e.Other) == 0
}

// Map renders the set messages in the wire {field: message} form.
func (e FieldErrors) Map() map[string]string {
	out := make(map[string]string)
	for _, f := range ErrorFields {
		if msg := e.Get(f); msg != "" {
			out[string(f)] = msg
		}
	}
	for k, v := range e.Other {
		out[k] = v
	}
	return out
}

func FieldErrorsFromMap(m map[string]string) FieldErrors {
	var e FieldErrors
	for k, v := range m {
		e.Set(Field(k), v)
	}
	return e
}

// Clone copies Other so the result can be handed out without sharing the map.
func (e FieldErrors) Clone() FieldErrors {
	if e.Other != nil {
		other := make(map[string]string, len(e.Other))
		for k, v := range e.Other {
			other[k] = v
		}
		e.Other = other
	}
	return e
}
