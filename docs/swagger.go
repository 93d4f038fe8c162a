package docs

// @title           Teleka Taxi API
// @version         1.0
// @description     Booking API behind the passenger, admin and driver consoles: ride request lifecycle, driver assignment, notification feeds and sample-data seeding.

// @contact.name   API Support

// @host      localhost:3000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
