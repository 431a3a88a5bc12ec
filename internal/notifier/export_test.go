package notifier

// Мост для доступа внешнего тестового пакета к неэкспортируемой функции
var GenerateHMACSHA256 = generateHMACSHA256
