package catalog

import "github.com/pageza/sofra/backend/internal/model"

// builtinDishes is the everyday Turkish home-cooking menu served by default
var builtinDishes = []model.Dish{
	// Main courses
	{ID: 1, Name: "Kuru Fasulye", Category: model.MainCourse, Description: model.Str("Classic Turkish white bean stew"), CookingTime: model.Str("45 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 2, Name: "Nohut", Category: model.MainCourse, Description: model.Str("Chickpea stew with meat"), CookingTime: model.Str("50 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 3, Name: "Taze Fasulye", Category: model.MainCourse, Description: model.Str("Green bean stew with tomatoes"), CookingTime: model.Str("40 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 4, Name: "Patates Yemeği", Category: model.MainCourse, Description: model.Str("Potato stew with meat"), CookingTime: model.Str("35 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 5, Name: "Mercimek Köftesi", Category: model.MainCourse, Description: model.Str("Lentil balls with bulgur"), CookingTime: model.Str("30 minutes"), Difficulty: model.Str("Medium"), CuisineType: model.Str("Turkish")},
	{ID: 6, Name: "Karnıyarık", Category: model.MainCourse, Description: model.Str("Stuffed eggplant with meat"), CookingTime: model.Str("45 minutes"), Difficulty: model.Str("Medium"), CuisineType: model.Str("Turkish")},
	{ID: 7, Name: "İmam Bayıldı", Category: model.MainCourse, Description: model.Str("Stuffed eggplant with vegetables"), CookingTime: model.Str("50 minutes"), Difficulty: model.Str("Medium"), CuisineType: model.Str("Turkish")},
	{ID: 8, Name: "Etli Biber Dolması", Category: model.MainCourse, Description: model.Str("Stuffed peppers with meat"), CookingTime: model.Str("40 minutes"), Difficulty: model.Str("Medium"), CuisineType: model.Str("Turkish")},
	{ID: 9, Name: "Köfte", Category: model.MainCourse, Description: model.Str("Turkish meatballs"), CookingTime: model.Str("30 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 10, Name: "Tavuk Sote", Category: model.MainCourse, Description: model.Str("Chicken sauté with vegetables"), CookingTime: model.Str("25 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 11, Name: "Et Sote", Category: model.MainCourse, Description: model.Str("Beef sauté with vegetables"), CookingTime: model.Str("30 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 12, Name: "Kıymalı Makarna", Category: model.MainCourse, Description: model.Str("Pasta with ground meat"), CookingTime: model.Str("20 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 13, Name: "Mantı", Category: model.MainCourse, Description: model.Str("Turkish dumplings with yogurt"), CookingTime: model.Str("60 minutes"), Difficulty: model.Str("Hard"), CuisineType: model.Str("Turkish")},
	{ID: 14, Name: "Lahmacun", Category: model.MainCourse, Description: model.Str("Turkish flatbread with meat"), CookingTime: model.Str("30 minutes"), Difficulty: model.Str("Medium"), CuisineType: model.Str("Turkish")},
	{ID: 15, Name: "Pide", Category: model.MainCourse, Description: model.Str("Turkish flatbread with various toppings"), CookingTime: model.Str("25 minutes"), Difficulty: model.Str("Medium"), CuisineType: model.Str("Turkish")},

	// Soups
	{ID: 16, Name: "Mercimek Çorbası", Category: model.Soup, Description: model.Str("Red lentil soup"), CookingTime: model.Str("25 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 17, Name: "Yayla Çorbası", Category: model.Soup, Description: model.Str("Yogurt soup with rice"), CookingTime: model.Str("20 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 18, Name: "Tavuk Çorbası", Category: model.Soup, Description: model.Str("Chicken soup with noodles"), CookingTime: model.Str("30 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 19, Name: "Ezogelin Çorbası", Category: model.Soup, Description: model.Str("Red lentil and bulgur soup"), CookingTime: model.Str("25 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 20, Name: "İşkembe Çorbası", Category: model.Soup, Description: model.Str("Tripe soup"), CookingTime: model.Str("60 minutes"), Difficulty: model.Str("Hard"), CuisineType: model.Str("Turkish")},

	// Side dishes
	{ID: 21, Name: "Pilav", Category: model.SideDish, Description: model.Str("Plain rice pilaf"), CookingTime: model.Str("20 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 22, Name: "Bulgur Pilavı", Category: model.SideDish, Description: model.Str("Bulgur pilaf"), CookingTime: model.Str("25 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 23, Name: "Etli Pilav", Category: model.SideDish, Description: model.Str("Rice pilaf with meat"), CookingTime: model.Str("30 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 24, Name: "Patates Kızartması", Category: model.SideDish, Description: model.Str("French fries"), CookingTime: model.Str("15 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 25, Name: "Patates Salatası", Category: model.SideDish, Description: model.Str("Potato salad"), CookingTime: model.Str("20 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 26, Name: "Pilaki", Category: model.SideDish, Description: model.Str("White bean salad"), CookingTime: model.Str("30 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},

	// Salads
	{ID: 27, Name: "Çoban Salatası", Category: model.Salad, Description: model.Str("Shepherd's salad with tomatoes and cucumbers"), CookingTime: model.Str("10 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 28, Name: "Gavurdağı Salatası", Category: model.Salad, Description: model.Str("Tomato and walnut salad"), CookingTime: model.Str("15 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 29, Name: "Roka Salatası", Category: model.Salad, Description: model.Str("Arugula salad"), CookingTime: model.Str("10 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},

	// Desserts
	{ID: 30, Name: "Sütlaç", Category: model.Dessert, Description: model.Str("Rice pudding"), CookingTime: model.Str("30 minutes"), Difficulty: model.Str("Easy"), CuisineType: model.Str("Turkish")},
	{ID: 31, Name: "Aşure", Category: model.Dessert, Description: model.Str("Noah's pudding with grains and fruits"), CookingTime: model.Str("60 minutes"), Difficulty: model.Str("Medium"), CuisineType: model.Str("Turkish")},
	{ID: 32, Name: "Baklava", Category: model.Dessert, Description: model.Str("Layered pastry with nuts"), CookingTime: model.Str("90 minutes"), Difficulty: model.Str("Hard"), CuisineType: model.Str("Turkish")},
	{ID: 33, Name: "Künefe", Category: model.Dessert, Description: model.Str("Shredded pastry with cheese"), CookingTime: model.Str("45 minutes"), Difficulty: model.Str("Hard"), CuisineType: model.Str("Turkish")},
	{ID: 34, Name: "Revani", Category: model.Dessert, Description: model.Str("Semolina cake with syrup"), CookingTime: model.Str("40 minutes"), Difficulty: model.Str("Medium"), CuisineType: model.Str("Turkish")},
}
