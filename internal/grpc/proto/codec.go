package proto

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName задаёт content-subtype, под которым зарегистрирован кодек
const CodecName = "json"

// Codec сериализует сообщения сервиса в JSON
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

// Marshal кодирует сообщение
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal декодирует сообщение
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name возвращает имя кодека
func (Codec) Name() string {
	return CodecName
}
