package main

import (
	"stockroom/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.BrandModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.AdminDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
