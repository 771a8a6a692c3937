package matching

// Vocabulary is the static list of recognized skill tokens used for
// text-based skill detection. Entries keep their original spelling; matching
// normalizes both sides, so punctuation and case variants still hit.
var Vocabulary = []string{
	// IT & software development
	"html", "css", "javascript", "typescript", "react", "angular", "vue", "next.js", "nuxt.js",
	"node", "express", "mongodb", "sql", "postgres", "tailwind", "redux", "rest", "api",
	"python", "django", "flask", "java", "spring", "docker", "kubernetes", "aws", "gcp", "azure",
	"git", "github", "testing", "jest", "cypress", "graphql", "ci", "cd", "redis", "rabbitmq", "microservices",
	"svelte", "jquery", "bootstrap", "sass", "less", "webpack", "vite",
	"nestjs", "fastify", "php", "laravel", "ruby", "rails",
	"kotlin", "scala", "go", "rust", "c", "c++", "c#", "dotnet", "asp.net",
	"mysql", "sqlite", "mariadb", "oracle", "firebase",
	"axios", "postman", "soap", "grpc", "socket.io", "websockets", "gitlab", "bitbucket",
	"vscode", "intellij", "eclipse", "pycharm",
	"jenkins", "githubactions", "gitlabci", "circleci", "travis",
	"helm", "terraform", "ansible", "vagrant", "cloudflare",
	"ec2", "s3", "lambda", "cloudfront", "rds", "dynamodb", "iam", "cognito", "cloudwatch",
	"linux", "ubuntu", "bash", "zsh", "powershell", "terminal", "vim", "nano", "tmux",
	"mocha", "chai", "playwright", "selenium", "vitest",
	"storybook", "tdd", "bdd", "junit", "nunit", "robotframework", "sonarqube",
	"eslint", "prettier", "husky", "commitlint", "swagger", "openapi", "pydantic", "sqlalchemy",
	"monorepo", "nx", "turbo", "lerna", "kafka", "nats",
	"elasticsearch", "logstash", "kibana", "prometheus", "grafana", "datadog", "newrelic",
	"sentry", "splunk", "auth0", "oauth", "jwt", "saml", "keycloak", "devops", "devsecops",

	// Data science & analytics
	"r", "excel", "msexcel", "powerbi", "tableau", "looker", "qlik",
	"dataanalysis", "datavisualization", "datamining", "datawrangling", "datacleaning",
	"etl", "bigquery", "snowflake", "redshift", "spark", "hadoop", "hive", "pig", "airflow",
	"pandas", "numpy", "matplotlib", "seaborn", "plotly", "dash", "statsmodels", "scipy",
	"scikit-learn", "xgboost", "lightgbm", "catboost", "machinelearning", "mlops",
	"deeplearning", "tensorflow", "keras", "pytorch", "onnx", "cv2", "opencv", "computervision",
	"nlp", "nltk", "spacy", "transformers", "huggingface", "llm", "langchain", "chatgpt",
	"generativeai", "openai", "dvc", "mlflow", "featureengineering", "modeltuning",
	"modeldeployment", "flaskapi", "fastapi", "streamlit", "gradio", "kaggle",

	// Finance & accounting
	"tally", "quickbooks", "zohobooks", "sapfico", "accounting", "bookkeeping",
	"gst", "incometax", "tds", "balancesheet", "p&l", "financialstatements",
	"auditing", "budgeting", "forecasting", "cfa", "ca", "investmentanalysis",
	"financialanalysis", "ratioanalysis", "bankreconciliation", "payroll", "erp", "costing",
	"valuation", "taxation", "compliance",

	// Marketing & sales
	"seo", "sem", "googleads", "facebookads", "instagrammarketing",
	"linkedinads", "emailmarketing", "mailchimp", "campaigns", "a/btesting",
	"contentwriting", "copywriting", "digitalmarketing", "socialmedia",
	"influencermarketing", "hubspot", "crm", "salesforce", "zohocrm",
	"leadgeneration", "sales", "coldcalling", "negotiation", "marketresearch",
	"branding", "publicrelations", "storytelling", "analytics", "conversionoptimization",

	// HR & management
	"recruitment", "talentacquisition", "interviewing", "hrms", "laborlaws", "employeeengagement",
	"traininganddevelopment", "onboarding", "performanceappraisal", "hranalytics", "organizationaldevelopment",
	"scrum", "agile", "kanban", "jira", "confluence", "projectmanagement",
	"stakeholdermanagement", "resourceplanning", "riskmanagement", "conflictresolution",
	"peoplemanagement", "teamleadership", "changemanagement",

	// Mechanical / civil / core engineering
	"autocad", "solidworks", "creo", "catia", "ansys", "matlab", "simulink", "mechanicaldesign",
	"machinedesign", "cam", "cad", "fea", "cfd", "staadpro", "etabs", "revit", "primavera",
	"msproject", "construction", "structuralengineering", "surveying", "autodesk", "bim",
	"plc", "scada", "hvac", "piping", "fluidmechanics", "thermodynamics", "manufacturing",

	// Healthcare / medical / pharma
	"nursing", "patientcare", "diagnosis", "pharmacology", "mbbs", "bds", "ayurveda", "homeopathy",
	"surgery", "pathology", "radiology", "clinicalresearch", "labtechnician", "dmlt",
	"hospitalmanagement", "emr", "ehr", "firstaid", "emergencymedicine", "medicalwriting",
	"public health", "epidemiology", "biostatistics", "vaccination", "medical coding",

	// Soft skills
	"communication", "teamwork", "problem solving", "critical thinking", "time management",
	"leadership", "adaptability", "creativity", "presentation", "organization",
	"emotional intelligence", "public speaking", "decision making", "conflict resolution",
	"resilience", "accountability", "multitasking", "attention to detail", "collaboration",
}
