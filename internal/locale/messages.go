package locale

var messages = map[Locale]map[string]string{
	RO: {
		"booking.selectBrandModel": "Selectează marca și modelul",
		"booking.selectIssue":      "Selectează problema",
		"booking.selectDateTime":   "Selectează data și ora",
		"booking.fillNamePhone":    "Completează numele și telefonul",
		"booking.unknownBrand":     "Marcă necunoscută",
		"booking.unknownModel":     "Model necunoscut",
		"booking.unknownIssue":     "Problemă necunoscută",
		"booking.dateUnavailable":  "Data nu este disponibilă",
		"booking.timeUnavailable":  "Ora nu este disponibilă",
		"booking.submitted":        "Rezervare trimisă! Te vom contacta în curând.",
		"shop.fillRequired":        "Completează câmpurile obligatorii",
		"shop.addDeliveryAddress":  "Adaugă adresa de livrare",
		"shop.courierCurrency":     "Livrarea prin curier este disponibilă doar pentru comenzi în MDL",
		"shop.cartEmpty":           "Coșul este gol",
		"shop.orderSuccess":        "Comanda a fost plasată!",
		"shop.productNotFound":     "Produsul nu a fost găsit",
		"shop.invalidQuantity":     "Cantitatea trebuie să fie între 1 și 99",
	},
	RU: {
		"booking.selectBrandModel": "Выберите марку и модель",
		"booking.selectIssue":      "Выберите проблему",
		"booking.selectDateTime":   "Выберите дату и время",
		"booking.fillNamePhone":    "Укажите имя и телефон",
		"booking.unknownBrand":     "Неизвестная марка",
		"booking.unknownModel":     "Неизвестная модель",
		"booking.unknownIssue":     "Неизвестная проблема",
		"booking.dateUnavailable":  "Дата недоступна",
		"booking.timeUnavailable":  "Время недоступно",
		"booking.submitted":        "Заявка отправлена! Мы скоро свяжемся с вами.",
		"shop.fillRequired":        "Заполните обязательные поля",
		"shop.addDeliveryAddress":  "Укажите адрес доставки",
		"shop.courierCurrency":     "Доставка курьером доступна только для заказов в MDL",
		"shop.cartEmpty":           "Корзина пуста",
		"shop.orderSuccess":        "Заказ оформлен!",
		"shop.productNotFound":     "Товар не найден",
		"shop.invalidQuantity":     "Количество должно быть от 1 до 99",
	},
	EN: {
		"booking.selectBrandModel": "Select the brand and model",
		"booking.selectIssue":      "Select the issue",
		"booking.selectDateTime":   "Select the date and time",
		"booking.fillNamePhone":    "Fill in your name and phone",
		"booking.unknownBrand":     "Unknown brand",
		"booking.unknownModel":     "Unknown model",
		"booking.unknownIssue":     "Unknown issue",
		"booking.dateUnavailable":  "This date is not available",
		"booking.timeUnavailable":  "This time is not available",
		"booking.submitted":        "Booking sent! We will contact you shortly.",
		"shop.fillRequired":        "Fill in the required fields",
		"shop.addDeliveryAddress":  "Add a delivery address",
		"shop.courierCurrency":     "Courier delivery is only available for orders in MDL",
		"shop.cartEmpty":           "Your cart is empty",
		"shop.orderSuccess":        "Order placed!",
		"shop.productNotFound":     "Product not found",
		"shop.invalidQuantity":     "Quantity must be between 1 and 99",
	},
}

// T translates key, falling back to the default locale and then to the key itself.
func T(l Locale, key string) string {
	if s, ok := messages[l][key]; ok {
		return s
	}
	if s, ok := messages[Default][key]; ok {
		return s
	}
	return key
}
