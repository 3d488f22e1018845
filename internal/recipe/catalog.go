package recipe

// SampleCatalog returns a fresh copy of the built-in sample dataset.
func SampleCatalog() []Recipe {
	out := make([]Recipe, len(sampleRecipes))
	for i, r := range sampleRecipes {
		out[i] = r.Clone()
	}
	return out
}

var sampleRecipes = []Recipe{
	{
		ID:             1,
		Title:          "Spaghetti Carbonara",
		Image:          "https://images.pexels.com/photos/4518839/pexels-photo-4518839.jpeg",
		ReadyInMinutes: 30,
		Servings:       4,
		Summary:        "A classic Italian pasta dish with eggs, cheese, pancetta, and black pepper.",
		Cuisines:       []string{"Italian"},
		DishTypes:      []string{"main course", "dinner"},
		Instructions: "<ol><li>Cook spaghetti according to package instructions.</li>" +
			"<li>In a separate pan, cook the pancetta until crispy.</li>" +
			"<li>Whisk eggs, grated cheese, and black pepper in a bowl.</li>" +
			"<li>Drain pasta, reserving some pasta water.</li>" +
			"<li>Working quickly, mix hot pasta with egg mixture, adding pasta water as needed to create a creamy sauce.</li>" +
			"<li>Add pancetta and serve immediately.</li></ol>",
		Ingredients: []Ingredient{
			{ID: 101, Name: "spaghetti", Amount: 1, Unit: "pound"},
			{ID: 102, Name: "eggs", Amount: 4},
			{ID: 103, Name: "pancetta", Amount: 8, Unit: "oz"},
			{ID: 104, Name: "Pecorino Romano", Amount: 1, Unit: "cup"},
			{ID: 105, Name: "black pepper", Amount: 2, Unit: "tsp"},
		},
		HealthScore: 45,
	},
	{
		ID:             2,
		Title:          "Chicken Tikka Masala",
		Image:          "https://images.pexels.com/photos/7625056/pexels-photo-7625056.jpeg",
		ReadyInMinutes: 60,
		Servings:       6,
		Summary:        "A popular Indian dish featuring marinated chicken in a spiced curry sauce.",
		Cuisines:       []string{"Indian"},
		DishTypes:      []string{"main course", "dinner"},
		Instructions: "<ol><li>Marinate chicken in yogurt and spices for at least 1 hour.</li>" +
			"<li>Grill or bake chicken until cooked through.</li>" +
			"<li>In a separate pan, make the sauce with onions, tomatoes, and spices.</li>" +
			"<li>Add cooked chicken to the sauce and simmer for 10 minutes.</li>" +
			"<li>Stir in cream and garnish with cilantro.</li></ol>",
		Ingredients: []Ingredient{
			{ID: 201, Name: "chicken breast", Amount: 2, Unit: "lbs"},
			{ID: 202, Name: "yogurt", Amount: 1, Unit: "cup"},
			{ID: 203, Name: "onion", Amount: 1, Unit: "large"},
			{ID: 204, Name: "garlic", Amount: 4, Unit: "cloves"},
			{ID: 205, Name: "ginger", Amount: 1, Unit: "tbsp"},
			{ID: 206, Name: "tomato sauce", Amount: 15, Unit: "oz"},
			{ID: 207, Name: "heavy cream", Amount: 1, Unit: "cup"},
			{ID: 208, Name: "garam masala", Amount: 2, Unit: "tbsp"},
		},
		HealthScore: 65,
	},
	{
		ID:             3,
		Title:          "Vegetarian Quinoa Bowl",
		Image:          "https://images.pexels.com/photos/1640770/pexels-photo-1640770.jpeg",
		ReadyInMinutes: 25,
		Servings:       2,
		Summary:        "A healthy and flavorful quinoa bowl packed with vegetables and protein.",
		Cuisines:       []string{"American", "Mediterranean"},
		DishTypes:      []string{"lunch", "main course"},
		Diets:          []string{"vegetarian", "gluten free"},
		Instructions: "<ol><li>Cook quinoa according to package instructions.</li>" +
			"<li>Roast or sauté your choice of vegetables.</li>" +
			"<li>Prepare a simple dressing with lemon juice, olive oil, and herbs.</li>" +
			"<li>Arrange quinoa and vegetables in bowls.</li>" +
			"<li>Top with avocado, seeds, and dressing.</li></ol>",
		Ingredients: []Ingredient{
			{ID: 301, Name: "quinoa", Amount: 1, Unit: "cup"},
			{ID: 302, Name: "broccoli", Amount: 2, Unit: "cups"},
			{ID: 303, Name: "bell pepper", Amount: 1},
			{ID: 304, Name: "chickpeas", Amount: 15, Unit: "oz"},
			{ID: 305, Name: "avocado", Amount: 1},
			{ID: 306, Name: "olive oil", Amount: 2, Unit: "tbsp"},
			{ID: 307, Name: "lemon juice", Amount: 1, Unit: "tbsp"},
		},
		HealthScore: 95,
		Vegetarian:  true,
		GlutenFree:  true,
	},
	{
		ID:             4,
		Title:          "Classic Beef Burger",
		Image:          "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg",
		ReadyInMinutes: 30,
		Servings:       4,
		Summary:        "A juicy homemade beef burger with all the fixings.",
		Cuisines:       []string{"American"},
		DishTypes:      []string{"lunch", "main course"},
		Instructions: "<ol><li>Mix ground beef with salt, pepper, and any desired seasonings.</li>" +
			"<li>Form into patties.</li>" +
			"<li>Grill or pan-fry to desired doneness.</li>" +
			"<li>Toast the buns.</li>" +
			"<li>Assemble burgers with your favorite toppings like lettuce, tomato, onion, and condiments.</li></ol>",
		Ingredients: []Ingredient{
			{ID: 401, Name: "ground beef", Amount: 1.5, Unit: "lbs"},
			{ID: 402, Name: "burger buns", Amount: 4},
			{ID: 403, Name: "lettuce", Amount: 4, Unit: "leaves"},
			{ID: 404, Name: "tomato", Amount: 1},
			{ID: 405, Name: "onion", Amount: 1},
			{ID: 406, Name: "cheddar cheese", Amount: 4, Unit: "slices"},
		},
		HealthScore: 40,
	},
	{
		ID:             5,
		Title:          "Thai Green Curry",
		Image:          "https://images.pexels.com/photos/699953/pexels-photo-699953.jpeg",
		ReadyInMinutes: 45,
		Servings:       4,
		Summary:        "A fragrant and spicy Thai curry with coconut milk and vegetables.",
		Cuisines:       []string{"Thai", "Asian"},
		DishTypes:      []string{"main course", "dinner"},
		Instructions: "<ol><li>In a large pot, heat oil and cook curry paste until fragrant.</li>" +
			"<li>Add protein of choice and cook until browned.</li>" +
			"<li>Pour in coconut milk and bring to a simmer.</li>" +
			"<li>Add vegetables and cook until tender.</li>" +
			"<li>Season with fish sauce and sugar.</li>" +
			"<li>Serve with rice and garnish with Thai basil and lime.</li></ol>",
		Ingredients: []Ingredient{
			{ID: 501, Name: "green curry paste", Amount: 3, Unit: "tbsp"},
			{ID: 502, Name: "coconut milk", Amount: 2, Unit: "cans"},
			{ID: 503, Name: "chicken", Amount: 1.5, Unit: "lbs"},
			{ID: 504, Name: "bell pepper", Amount: 1},
			{ID: 505, Name: "bamboo shoots", Amount: 1, Unit: "can"},
			{ID: 506, Name: "fish sauce", Amount: 2, Unit: "tbsp"},
			{ID: 507, Name: "Thai basil", Amount: 1, Unit: "cup"},
		},
		HealthScore: 70,
	},
	{
		ID:             6,
		Title:          "Mediterranean Salad",
		Image:          "https://images.pexels.com/photos/1211887/pexels-photo-1211887.jpeg",
		ReadyInMinutes: 15,
		Servings:       2,
		Summary:        "A refreshing salad with Mediterranean flavors including feta, olives, and a lemon vinaigrette.",
		Cuisines:       []string{"Mediterranean", "Greek"},
		DishTypes:      []string{"salad", "side dish", "lunch"},
		Diets:          []string{"vegetarian"},
		Instructions: "<ol><li>Combine chopped cucumber, tomato, red onion, and bell pepper in a bowl.</li>" +
			"<li>Add Kalamata olives and cubed feta cheese.</li>" +
			"<li>Mix olive oil, lemon juice, oregano, salt, and pepper for the dressing.</li>" +
			"<li>Pour dressing over salad and toss gently.</li>" +
			"<li>Serve immediately or refrigerate for flavors to meld.</li></ol>",
		Ingredients: []Ingredient{
			{ID: 601, Name: "cucumber", Amount: 1},
			{ID: 602, Name: "tomato", Amount: 2},
			{ID: 603, Name: "red onion", Amount: 0.5},
			{ID: 604, Name: "bell pepper", Amount: 1},
			{ID: 605, Name: "Kalamata olives", Amount: 0.5, Unit: "cup"},
			{ID: 606, Name: "feta cheese", Amount: 4, Unit: "oz"},
			{ID: 607, Name: "olive oil", Amount: 3, Unit: "tbsp"},
			{ID: 608, Name: "lemon juice", Amount: 2, Unit: "tbsp"},
		},
		HealthScore: 90,
		Vegetarian:  true,
	},
	{
		ID:             7,
		Title:          "Chocolate Chip Cookies",
		Image:          "https://images.pexels.com/photos/230325/pexels-photo-230325.jpeg",
		ReadyInMinutes: 30,
		Servings:       24,
		Summary:        "Classic homemade chocolate chip cookies that are soft in the middle and crispy on the edges.",
		Cuisines:       []string{"American"},
		DishTypes:      []string{"dessert", "snack"},
		Instructions: "<ol><li>Preheat oven to 375°F (190°C).</li>" +
			"<li>Cream together butter and sugars until light and fluffy.</li>" +
			"<li>Beat in eggs and vanilla.</li>" +
			"<li>Mix in dry ingredients until combined.</li>" +
			"<li>Fold in chocolate chips.</li>" +
			"<li>Drop by rounded tablespoons onto baking sheets.</li>" +
			"<li>Bake for 9-11 minutes or until golden brown.</li>" +
			"<li>Cool on baking sheets for 2 minutes, then transfer to wire racks.</li></ol>",
		Ingredients: []Ingredient{
			{ID: 701, Name: "butter", Amount: 1, Unit: "cup"},
			{ID: 702, Name: "brown sugar", Amount: 0.75, Unit: "cup"},
			{ID: 703, Name: "granulated sugar", Amount: 0.75, Unit: "cup"},
			{ID: 704, Name: "eggs", Amount: 2},
			{ID: 705, Name: "vanilla extract", Amount: 2, Unit: "tsp"},
			{ID: 706, Name: "all-purpose flour", Amount: 2.25, Unit: "cups"},
			{ID: 707, Name: "baking soda", Amount: 1, Unit: "tsp"},
			{ID: 708, Name: "salt", Amount: 0.5, Unit: "tsp"},
			{ID: 709, Name: "chocolate chips", Amount: 2, Unit: "cups"},
		},
		HealthScore: 25,
		Vegetarian:  true,
	},
	{
		ID:             8,
		Title:          "Roast Chicken with Vegetables",
		Image:          "https://images.pexels.com/photos/265393/pexels-photo-265393.jpeg",
		ReadyInMinutes: 90,
		Servings:       4,
		Summary:        "A classic roast chicken dinner with root vegetables and herbs.",
		Cuisines:       []string{"American", "British"},
		DishTypes:      []string{"main course", "dinner"},
		Instructions: "<ol><li>Preheat oven to 425°F (220°C).</li>" +
			"<li>Season chicken inside and out with salt, pepper, and herbs.</li>" +
			"<li>Stuff cavity with lemon, garlic, and herbs if desired.</li>" +
			"<li>Place chopped vegetables in a roasting pan and place chicken on top.</li>" +
			"<li>Drizzle everything with olive oil.</li>" +
			"<li>Roast for 70-90 minutes until chicken juices run clear.</li>" +
			"<li>Let rest for 10-15 minutes before carving.</li>" +
			"<li>Serve with roasted vegetables.</li></ol>",
		Ingredients: []Ingredient{
			{ID: 801, Name: "whole chicken", Amount: 4, Unit: "lbs"},
			{ID: 802, Name: "potatoes", Amount: 1.5, Unit: "lbs"},
			{ID: 803, Name: "carrots", Amount: 4},
			{ID: 804, Name: "onion", Amount: 1},
			{ID: 805, Name: "garlic", Amount: 1, Unit: "head"},
			{ID: 806, Name: "lemon", Amount: 1},
			{ID: 807, Name: "olive oil", Amount: 3, Unit: "tbsp"},
			{ID: 808, Name: "rosemary", Amount: 2, Unit: "sprigs"},
			{ID: 809, Name: "thyme", Amount: 4, Unit: "sprigs"},
		},
		HealthScore: 75,
	},
}
