package domain

var (
	CATALOG_GET_CATEGORIES_SUCCESS = "Successfully retrieved categories"
	CATALOG_GET_CATEGORIES_FAILED  = "Failed to retrieve categories"
	CATALOG_GET_CATEGORY_SUCCESS   = "Successfully retrieved category"
	CATALOG_GET_CATEGORY_FAILED    = "Failed to retrieve category"
	CATALOG_GET_LESSON_SUCCESS     = "Successfully retrieved lesson"
	CATALOG_GET_LESSON_FAILED      = "Failed to retrieve lesson"
)
