package looseJSON

import (
	"testing"

	"github.com/valyala/fastjson"
)

var benchDocs = []struct {
	name string
	json string
}{
	{name: "flat", json: `{"a":"1","b":"2","c":"3","d":"4","e":"5","f":"6","g":"7","h":"8"}`},
	{name: "nested", json: `{"l1":{"l2":{"l3":{"l4":{"leaf":"v"}}}},"side":"x"}`},
	{name: "scenario", json: scenarioJSON},
	{name: "arrays", json: `{"a":[1,2,3,4,5,6,7,8],"b":["x","y","z"],"c":[true,false,null]}`},
}

func BenchmarkDecode(b *testing.B) {
	for _, benchmark := range benchDocs {
		b.Run("loose-"+benchmark.name, func(b *testing.B) {
			b.SetBytes(int64(len(benchmark.json)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				doc, _ := DecodeString(benchmark.json)
				Release(doc)
			}
		})
		b.Run("fast-"+benchmark.name, func(b *testing.B) {
			parser := fastjson.Parser{}
			b.SetBytes(int64(len(benchmark.json)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = parser.Parse(benchmark.json)
			}
		})
	}
}

func BenchmarkDig(b *testing.B) {
	b.Run("loose", func(b *testing.B) {
		doc, _ := DecodeString(scenarioJSON)
		b.SetBytes(1)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			doc.Dig("item3", "sub1")
		}
		Release(doc)
	})

	b.Run("fastjson", func(b *testing.B) {
		parser := fastjson.Parser{}
		c, _ := parser.Parse(scenarioJSON)
		b.SetBytes(1)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			c.Get("item3", "sub1")
		}
	})
}
