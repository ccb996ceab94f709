package handler

// APIV1Prefix is the canonical base path for public HTTP API v1.
// Keep a single source of truth to avoid path drift across handlers and tests.
const APIV1Prefix = "/api/v1"

// ArticlesPath is the article collection route.
const ArticlesPath = APIV1Prefix + "/articles"
